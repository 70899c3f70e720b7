package utils

import "time"

// ToVietnamTime converts UTC time to Indochina Time (ICT), the timezone
// all service centers operate in.
func ToVietnamTime(t time.Time) time.Time {
	ict, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return t // Fallback to UTC if the zone database is missing
	}
	return t.In(ict)
}
