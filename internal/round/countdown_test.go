package round

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_TicksCarrySeq(t *testing.T) {
	cd := NewCountdown(2 * time.Millisecond)
	cd.Start(4)
	defer cd.Stop()

	select {
	case seq := <-cd.C():
		assert.Equal(t, 4, seq)
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}
}

func TestCountdown_StopIsSynchronous(t *testing.T) {
	cd := NewCountdown(time.Millisecond)
	cd.Start(1)
	<-cd.C()
	cd.Stop()

	select {
	case seq := <-cd.C():
		t.Fatalf("tick %d delivered after Stop", seq)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestCountdown_RestartSwitchesSeq(t *testing.T) {
	cd := NewCountdown(time.Millisecond)
	cd.Start(1)
	cd.Start(2)
	defer cd.Stop()

	for i := 0; i < 3; i++ {
		select {
		case seq := <-cd.C():
			require.Equal(t, 2, seq)
		case <-time.After(time.Second):
			t.Fatal("no tick delivered")
		}
	}
}

func TestCountdown_StopWithoutStart(t *testing.T) {
	cd := NewCountdown(time.Millisecond)
	cd.Stop()
	cd.Stop()
}
