package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
	"github.com/unolite/server/uno/event"
)

func TestCardPlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.CardPlayed.AddListener(listenerOne)
	event.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			RoomCode:   "ABCD",
			PlayerName: "Someone",
			Card:       card.NewWildCard(),
		},
		{
			RoomCode:   "EFGH",
			PlayerName: "Somebody",
			Card:       card.NewDrawTwoCard(color.Green),
		},
	}

	for _, payload := range payloads {
		event.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
