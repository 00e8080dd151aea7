package locks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyed_MutualExclusion(t *testing.T) {
	k := NewKeyed()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("AC-100")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyed_OverlappingKeySetsDoNotDeadlock(t *testing.T) {
	k := NewKeyed()

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				unlock := k.Lock("AC-100", "AC-200")
				unlock()
			}()
			go func() {
				defer wg.Done()
				unlock := k.Lock("AC-200", "AC-100")
				unlock()
			}()
		}
		wg.Wait()
		close(done)
	}()

	<-done
}

func TestKeyed_DuplicateKeys(t *testing.T) {
	k := NewKeyed()

	unlock := k.Lock("G12", "G12")
	unlock()

	// Lockable again afterwards
	unlock = k.Lock("G12")
	unlock()
}

func TestKeyed_UnlockIsIdempotent(t *testing.T) {
	k := NewKeyed()

	unlock := k.Lock("REF-ABC123")
	unlock()
	assert.NotPanics(t, func() { unlock() })

	unlock = k.Lock("REF-ABC123")
	unlock()
}

func TestKeyed_EntriesDroppedWhenReleased(t *testing.T) {
	k := NewKeyed()

	unlock := k.Lock("AC-100", "G12")
	unlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.entries)
}
