package task

import (
	"testing"
	"time"
)

func TestCountdownLastSecondsOfDueDay(t *testing.T) {
	now := time.Date(2024, time.March, 15, 23, 59, 58, 0, time.Local)
	cd, err := CountdownFor("2024-03-15", now)
	if err != nil {
		t.Fatalf("CountdownFor: %v", err)
	}
	if cd.Expired {
		t.Errorf("still within the due day, got %+v", cd)
	}
	if !cd.Urgent {
		t.Error("under three hours left should be urgent")
	}
	if cd.Text != "0 Hours 0 Minutes 1 Seconds" {
		t.Errorf("text = %q", cd.Text)
	}
}

func TestCountdownExpired(t *testing.T) {
	now := time.Date(2024, time.March, 16, 8, 0, 0, 0, time.Local)
	cd, err := CountdownFor("2024-03-15", now)
	if err != nil {
		t.Fatalf("CountdownFor: %v", err)
	}
	if !cd.Expired || !cd.Urgent || cd.Text != "EXPIRED" {
		t.Errorf("countdown = %+v", cd)
	}
}

func TestCountdownDecomposition(t *testing.T) {
	// 2 days, 3 hours, 4 minutes, 5 seconds before end of the due day.
	end := time.Date(2024, time.March, 15, 23, 59, 59, 999*1000*1000, time.Local)
	now := end.Add(-(48*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second))
	cd, err := CountdownFor("2024-03-15", now)
	if err != nil {
		t.Fatalf("CountdownFor: %v", err)
	}
	if cd.Text != "2 Days 3 Hours 4 Minutes 5 Seconds" {
		t.Errorf("text = %q", cd.Text)
	}
	if cd.Urgent {
		t.Error("two days out is not urgent")
	}
}

func TestCountdownOmitsZeroDays(t *testing.T) {
	now := time.Date(2024, time.March, 15, 20, 0, 0, 0, time.Local)
	cd, err := CountdownFor("2024-03-15", now)
	if err != nil {
		t.Fatalf("CountdownFor: %v", err)
	}
	if cd.Text != "3 Hours 59 Minutes 59 Seconds" {
		t.Errorf("text = %q", cd.Text)
	}
	if cd.Urgent {
		t.Error("3h59m left is not yet urgent")
	}
}

func TestCountdownUrgentUnderThreeHours(t *testing.T) {
	now := time.Date(2024, time.March, 15, 21, 30, 0, 0, time.Local)
	cd, err := CountdownFor("2024-03-15", now)
	if err != nil {
		t.Fatalf("CountdownFor: %v", err)
	}
	if !cd.Urgent {
		t.Errorf("2h29m left should be urgent: %+v", cd)
	}
}

func TestCountdownBadKey(t *testing.T) {
	if _, err := CountdownFor("whenever", time.Now()); err == nil {
		t.Error("bad key should return an error for the caller to skip")
	}
}
