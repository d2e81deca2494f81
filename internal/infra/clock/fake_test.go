package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_TickerFiresOnAdvance(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fake := NewFake(start)
	ticker := fake.NewTicker(30 * time.Second)

	fake.Advance(10 * time.Second)
	select {
	case <-ticker.C():
		t.Fatal("ticker fired early")
	default:
	}

	fake.Advance(20 * time.Second)
	select {
	case tick := <-ticker.C():
		assert.Equal(t, start.Add(30*time.Second), tick)
	default:
		t.Fatal("ticker did not fire")
	}

	ticker.Stop()
	assert.Equal(t, 0, fake.TickerCount())
	fake.Advance(time.Minute)
	select {
	case <-ticker.C():
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestFake_SetDoesNotFire(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fake := NewFake(start)
	ticker := fake.NewTicker(time.Second)

	fake.Set(start.Add(time.Hour))
	assert.Equal(t, start.Add(time.Hour), fake.Now())
	select {
	case <-ticker.C():
		t.Fatal("Set must not fire tickers")
	default:
	}
}
