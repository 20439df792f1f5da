package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
	"github.com/unolite/server/uno/event"
)

func TestFirstCardPlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.FirstCardPlayed.AddListener(listenerOne)
	event.FirstCardPlayed.AddListener(listenerTwo)

	payloads := []event.FirstCardPlayedPayload{
		{
			RoomCode: "ABCD",
			Card:     card.NewNumberCard(color.Blue, 7),
		},
		{
			RoomCode: "EFGH",
			Card:     card.NewSkipCard(color.Red),
		},
	}

	for _, payload := range payloads {
		event.FirstCardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
