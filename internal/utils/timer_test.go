package utils

import (
	"testing"
	"time"
)

func TestNewTimer_StartsImmediately(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("Stop() = %v, want positive duration", elapsed)
	}
	if timer.GetDuration() != elapsed {
		t.Errorf("GetDuration() = %v, want %v", timer.GetDuration(), elapsed)
	}
}

func TestTimer_GetDuration_BeforeStop(t *testing.T) {
	timer := NewTimer()
	if timer.GetDuration() != 0 {
		t.Errorf("GetDuration() before Stop = %v, want 0", timer.GetDuration())
	}
}

func TestTimer_Start_Restart(t *testing.T) {
	timer := NewTimer()
	time.Sleep(5 * time.Millisecond)
	first := timer.Stop()

	timer.Start()
	if timer.GetDuration() != 0 {
		t.Errorf("GetDuration() after Start = %v, want 0", timer.GetDuration())
	}
	second := timer.Stop()

	if second >= first {
		t.Errorf("duration after restart %v should be less than %v", second, first)
	}
}

func TestTimer_Milliseconds(t *testing.T) {
	timer := &Timer{duration: 1500 * time.Microsecond}
	if got := timer.Milliseconds(); got != 1.5 {
		t.Errorf("Milliseconds() = %v, want 1.5", got)
	}
}
