package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unolite/server/uno/event"
)

func TestGameWon(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.GameWon.AddListener(listenerOne)
	event.GameWon.AddListener(listenerTwo)

	payloads := []event.GameWonPayload{
		{
			RoomCode:   "ABCD",
			PlayerName: "Someone",
		},
		{
			RoomCode:   "EFGH",
			PlayerName: "Somebody",
		},
	}

	for _, payload := range payloads {
		event.GameWon.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
