package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fitgym/fgms/internal/dto"
	"github.com/fitgym/fgms/internal/repository"
)

type sampleMember struct {
	Name       string
	Phone      string
	Membership string
	ExpiresIn  time.Duration
	Visits     int
}

var sampleMembers = []sampleMember{
	{Name: "Rahul Sharma", Phone: "9876543210", Membership: "Monthly", ExpiresIn: 30 * 24 * time.Hour, Visits: 5},
	{Name: "Priya Patel", Phone: "9123456780", Membership: "Quarterly", ExpiresIn: 90 * 24 * time.Hour, Visits: 12},
	{Name: "Amit Verma", Phone: "9988776655", Membership: "Yearly", ExpiresIn: 365 * 24 * time.Hour, Visits: 20},
	{Name: "Sneha Iyer", Phone: "9012345678", Membership: "Monthly", ExpiresIn: -5 * 24 * time.Hour, Visits: 3},
}

func (s *Seed) CreateSampleMembers() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	for _, sample := range sampleMembers {
		member, err := s.MemberRepo.Create(ctx, &repository.Member{
			Name:       sample.Name,
			Phone:      sample.Phone,
			Membership: sample.Membership,
			ExpiresAt:  now.Add(sample.ExpiresIn),
			Picture:    dto.DefaultPictureURL,
			JoinedAt:   now,
		})
		if err != nil {
			log.Fatalf("Failed to create member %s: %v", sample.Name, err)
		}

		// Backfill a small attendance history, one closed entry per day.
		for i := 1; i <= sample.Visits; i++ {
			day := now.AddDate(0, 0, -i)
			checkIn := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC)

			entry, err := s.AttendanceRepo.Create(ctx, &repository.AttendanceEntry{
				MemberID: member.ID,
				Day:      time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
				CheckIn:  checkIn,
			})
			if err != nil {
				log.Fatalf("Failed to create attendance for %s: %v", sample.Name, err)
			}

			if _, err := s.AttendanceRepo.Close(ctx, member.ID, entry.Day, checkIn.Add(2*time.Hour)); err != nil {
				log.Fatalf("Failed to close attendance for %s: %v", sample.Name, err)
			}
		}

		fmt.Printf("Member %s seeded with %d visits\n", sample.Name, sample.Visits)
	}
}
