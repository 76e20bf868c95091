package schedule

import (
	"fmt"
	"sort"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

// validateBlocks проверяет день недели, границы блоков и отсутствие пересечений внутри дня
func validateBlocks(blocks []models.AvailabilityBlock) error {
	byDay := make(map[int][]models.AvailabilityBlock)

	for i, b := range blocks {
		if b.DayOfWeek < 0 || b.DayOfWeek > 6 {
			return fmt.Errorf("%w: block %d: dayOfWeek must be between 0 and 6", ErrInvalidInput, i)
		}
		if err := b.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: block %d: startTime: %v", ErrInvalidInput, i, err)
		}
		if err := b.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: block %d: endTime: %v", ErrInvalidInput, i, err)
		}
		if !b.StartTime.IsBefore(b.EndTime) {
			return fmt.Errorf("%w: block %d: startTime must be before endTime", ErrInvalidInput, i)
		}
		byDay[b.DayOfWeek] = append(byDay[b.DayOfWeek], b)
	}

	for day, dayBlocks := range byDay {
		sort.Slice(dayBlocks, func(i, j int) bool {
			return dayBlocks[i].StartTime.IsBefore(dayBlocks[j].StartTime)
		})
		// Блоки, которые соприкасаются концами, не пересекаются
		for i := 1; i < len(dayBlocks); i++ {
			if dayBlocks[i].StartTime.IsBefore(dayBlocks[i-1].EndTime) {
				return fmt.Errorf("%w: day %d: %s-%s and %s-%s", ErrOverlappingBlocks, day,
					dayBlocks[i-1].StartTime, dayBlocks[i-1].EndTime, dayBlocks[i].StartTime, dayBlocks[i].EndTime)
			}
		}
	}

	return nil
}

func validatePricing(entries []models.PricingEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: entries must not be empty", ErrInvalidInput)
	}
	for i, e := range entries {
		if e.ServiceID <= 0 {
			return fmt.Errorf("%w: entry %d: serviceId must be positive", ErrInvalidInput, i)
		}
		if !e.TimePeriod.IsValid() {
			return fmt.Errorf("%w: entry %d: unknown timePeriod %q", ErrInvalidInput, i, e.TimePeriod)
		}
		if e.Price < 0 {
			return fmt.Errorf("%w: entry %d: price must not be negative", ErrInvalidInput, i)
		}
	}
	return nil
}

func validateTimeOffReason(reason *string) error {
	if reason != nil && len(*reason) > domain.MaxTimeOffReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxTimeOffReasonLength)
	}
	return nil
}
