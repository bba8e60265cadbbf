// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-trainer/internal/clients/osrsbox"
	osrsboxmock "github.com/KirkDiggler/rpg-trainer/internal/clients/osrsbox/mock"
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	catalogrepo "github.com/KirkDiggler/rpg-trainer/internal/repositories/catalog"
	catalogrepomock "github.com/KirkDiggler/rpg-trainer/internal/repositories/catalog/mock"
)

// EmptySlotDocument is a valid slot document without items
const EmptySlotDocument = `{}`

// ExpectSlotCached makes the repository return doc for slot
func ExpectSlotCached(mockRepo *catalogrepomock.MockRepository, slot osrs.Slot, doc string) {
	mockRepo.EXPECT().
		Get(gomock.Any(), &catalogrepo.GetInput{Slot: slot}).
		Return(&catalogrepo.GetOutput{
			Document: &catalogrepo.SlotDocument{
				Slot:      slot,
				Document:  []byte(doc),
				Source:    "cache",
				FetchedAt: time.Unix(0, 0).UTC(),
			},
		}, nil)
}

// ExpectSlotMiss makes the repository report slot as not cached
func ExpectSlotMiss(mockRepo *catalogrepomock.MockRepository, slot osrs.Slot) {
	mockRepo.EXPECT().
		Get(gomock.Any(), &catalogrepo.GetInput{Slot: slot}).
		Return(nil, catalogrepo.NotCached(slot))
}

// ExpectSlotFetched makes the client return doc for slot and expects the
// repository to store it
func ExpectSlotFetched(
	mockClient *osrsboxmock.MockClient, mockRepo *catalogrepomock.MockRepository,
	slot osrs.Slot, doc string, ttl time.Duration,
) {
	source := "https://example.test/" + osrsbox.DocumentName(slot)

	mockClient.EXPECT().
		FetchSlot(gomock.Any(), &osrsbox.FetchSlotInput{Slot: slot}).
		Return(&osrsbox.FetchSlotOutput{Document: []byte(doc), Source: source}, nil)

	mockRepo.EXPECT().
		Put(gomock.Any(), &catalogrepo.PutInput{
			Slot:     slot,
			Document: []byte(doc),
			Source:   source,
			TTL:      ttl,
		}).
		Return(&catalogrepo.PutOutput{}, nil)
}

// SlotDocuments returns doc for weapon and an empty document for every other slot
func SlotDocuments(weaponDoc string) map[osrs.Slot]string {
	docs := make(map[osrs.Slot]string, len(osrs.EquipmentSlots))
	for _, slot := range osrs.EquipmentSlots {
		docs[slot] = EmptySlotDocument
	}
	docs[osrs.SlotWeapon] = weaponDoc
	return docs
}
