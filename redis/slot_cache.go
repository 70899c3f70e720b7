package redis

import (
	"encoding/json"
	"log"
	"time"

	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/db"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/models"
	"github.com/spring25-swp391-se1825-group5/ev-center-scheduler/utils"
)

const (
	slotCacheKey = "timeslots:active"
	slotCacheTTL = 5 * time.Minute

	// Slot CRUD from the admin screen tends to arrive in bursts, so
	// refreshes are coalesced behind a short trailing debounce.
	refreshDelay = 300 * time.Millisecond
)

var (
	slotRefresh = utils.NewDebouncer(refreshDelay)
	slotEpoch   utils.Epoch
)

// GetActiveSlots returns the active slot catalogue, serving from cache
// when possible. A cache miss falls through to Postgres and repopulates
// the key.
func GetActiveSlots() ([]models.TimeSlot, error) {
	if Client != nil {
		if raw, err := Client.Get(Ctx, slotCacheKey).Bytes(); err == nil {
			var slots []models.TimeSlot
			if err := json.Unmarshal(raw, &slots); err == nil {
				return slots, nil
			}
			// Corrupt payload: drop it and reload below.
			Client.Del(Ctx, slotCacheKey)
		}
	}

	slots, err := loadActiveSlots()
	if err != nil {
		return nil, err
	}
	storeSlots(slots)
	return slots, nil
}

// InvalidateSlotCache schedules a debounced cache rebuild after a slot
// write. The generation captured at dispatch guards against a slow
// rebuild overwriting the result of a later one.
func InvalidateSlotCache() {
	gen := slotEpoch.Next()
	slotRefresh.Trigger(func() {
		slots, err := loadActiveSlots()
		if err != nil {
			log.Printf("Slot cache refresh failed: %v", err)
			return
		}
		if !slotEpoch.IsCurrent(gen) {
			return // a newer invalidation owns the cache now
		}
		storeSlots(slots)
	})
}

// StopSlotCache cancels any pending refresh; call on shutdown.
func StopSlotCache() {
	slotRefresh.Stop()
}

func loadActiveSlots() ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	if err := db.DB.Where("is_active = ?", true).Order("start_time asc").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func storeSlots(slots []models.TimeSlot) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := Client.Set(Ctx, slotCacheKey, raw, slotCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache slot catalogue: %v", err)
	}
}
