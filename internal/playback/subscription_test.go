package playback

import (
	"errors"
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Current: State{ID: "calm", IsPlaying: true}})
		sub.sendEnded(Ended{ID: "calm"})
		sub.sendError(ErrorEvent{Operation: "play", ID: "calm", Err: errors.New("boom")})

		e := <-sub.StateChanged
		if !e.Current.IsPlaying {
			t.Errorf("StateChanged.Current.IsPlaying = false, want true")
		}

		end := <-sub.Ended
		if end.ID != "calm" {
			t.Errorf("Ended.ID = %q, want calm", end.ID)
		}

		ev := <-sub.Error
		if ev.Operation != "play" {
			t.Errorf("Error.Operation = %q, want play", ev.Operation)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_State_KeepsLatest(t *testing.T) {
	sub := newSubscription()

	for i := range eventBufferSize + 5 {
		sub.sendState(StateChange{Current: State{Progress: float64(i)}})
	}

	var last StateChange
	count := 0
	for {
		select {
		case e := <-sub.StateChanged:
			last = e
			count++
			continue
		default:
		}
		break
	}
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
	if want := float64(eventBufferSize + 4); last.Current.Progress != want {
		t.Errorf("last Progress = %v, want %v", last.Current.Progress, want)
	}
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.sendEnded(Ended{})
	}

	count := 0
	for {
		select {
		case <-sub.Ended:
			count++
			continue
		default:
		}
		break
	}
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}
