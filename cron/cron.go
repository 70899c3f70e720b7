package cron

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/utils"
)

// StartCronJobs initializes and starts the scheduler for the technician
// morning digest.
func StartCronJobs() {
	c := cron.New()
	// Every day at 07:00, before the first slot of the day
	_, err := c.AddFunc("0 7 * * *", sendDailyDigests)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for technician digests")
}

// sendDailyDigests mails each technician the booked slots on their
// schedule for today.
func sendDailyDigests() {
	today := time.Now()
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.Preload("TechnicianSlot.Slot").Preload("TechnicianSlot.Technician.User").
		Joins("JOIN technician_slots ON technician_slots.id = bookings.technician_slot_id").
		Where("bookings.status = ? AND technician_slots.work_date >= ? AND technician_slots.work_date < ?",
			models.BookingConfirmed, dayStart, dayEnd).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for digests: %v", err)
		return
	}
	if len(bookings) == 0 {
		return
	}

	byTechnician := make(map[uint][]models.Booking)
	for _, b := range bookings {
		byTechnician[b.TechnicianSlot.TechnicianID] = append(byTechnician[b.TechnicianSlot.TechnicianID], b)
	}

	for _, list := range byTechnician {
		user := list[0].TechnicianSlot.Technician.User
		if user.Email == "" {
			continue
		}
		if err := sendDigestEmail(user, list); err != nil {
			log.Printf("Failed to send digest to %s: %v", user.Email, err)
			continue
		}
		log.Printf("Sent daily digest to %s (%d bookings)", user.Email, len(list))
	}
}

// sendDigestEmail constructs and sends the digest email
func sendDigestEmail(user models.User, bookings []models.Booking) error {
	var rows strings.Builder
	for _, b := range bookings {
		rows.WriteString(fmt.Sprintf(
			"<li><strong>%s</strong> — %s (%s), %s</li>",
			b.TechnicianSlot.Slot.SlotLabel,
			b.CustomerName,
			b.CustomerPhone,
			b.VehicleModel,
		))
	}

	subject := fmt.Sprintf("Your bookings for %s", utils.ToVietnamTime(time.Now()).Format("02/01/2006"))
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You have %d confirmed booking(s) today:</p>
		<ul>%s</ul>
		<p>Please check the admin console for service requests and notes.</p>
		<p>EV Service Center</p>
	`, user.FullName, len(bookings), rows.String())

	return utils.SendEmail(user.Email, subject, body)
}
