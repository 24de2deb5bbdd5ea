package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ContentsKind tags the concrete payload carried by an item's Contents field.
type ContentsKind string

const (
	KindFixedCards    ContentsKind = "fixed_cards"
	KindRandomCards   ContentsKind = "random_cards"
	KindRarityQuota   ContentsKind = "rarity_quota"
	KindCurrencyGrant ContentsKind = "currency_grant"
	KindCosmeticGrant ContentsKind = "cosmetic_grant"
)

// ErrUnknownContentsKind is returned when decoding contents whose kind tag is
// not one of the defined payload types.
var ErrUnknownContentsKind = errors.New("catalog: unknown contents kind")

// Contents is the payload a catalog item grants on purchase. Exactly one
// concrete type implements each kind; consumption sites switch exhaustively
// over the concrete types so a new kind is a compile-visible change.
type Contents interface {
	Kind() ContentsKind
}

// FixedCards is an explicit card list; a card identifier appearing N times
// grants N copies. CardsPerPack optionally caps how many of the listed cards
// a single opening hands out.
type FixedCards struct {
	CardIDs      []uuid.UUID `json:"cardIds"`
	CardsPerPack *int        `json:"cardsPerPack,omitempty"`
}

// Kind implements Contents.
func (FixedCards) Kind() ContentsKind { return KindFixedCards }

// RandomCards draws CardsPerPack cards uniformly from the pool. The draw
// itself happens inside the pack-opening procedure, not in this service.
type RandomCards struct {
	PoolCardIDs  []uuid.UUID `json:"poolCardIds"`
	CardsPerPack int         `json:"cardsPerPack"`
}

// Kind implements Contents.
func (RandomCards) Kind() ContentsKind { return KindRandomCards }

// RarityQuota draws a fixed count of cards per rarity tier, resolved by the
// pack-opening procedure.
type RarityQuota struct {
	Quota map[Rarity]int `json:"rarityQuota"`
}

// Kind implements Contents.
func (RarityQuota) Kind() ContentsKind { return KindRarityQuota }

// CurrencyGrant credits in-game currency instead of cards.
type CurrencyGrant struct {
	Coins int `json:"coins"`
	Gems  int `json:"gems"`
}

// Kind implements Contents.
func (CurrencyGrant) Kind() ContentsKind { return KindCurrencyGrant }

// CosmeticGrant unlocks customization entries.
type CosmeticGrant struct {
	CustomizationIDs []uuid.UUID `json:"customizationIds"`
}

// Kind implements Contents.
func (CosmeticGrant) Kind() ContentsKind { return KindCosmeticGrant }

// EncodeContents serializes a Contents value with its kind tag. It is used
// both for API responses and for the jsonb column in the item table.
func EncodeContents(c Contents) ([]byte, error) {
	if c == nil {
		return nil, errors.New("catalog: nil contents")
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	kind, err := json.Marshal(c.Kind())
	if err != nil {
		return nil, err
	}
	fields["kind"] = kind

	return json.Marshal(fields)
}

// DecodeContents parses a tagged contents document back into its concrete
// type. An unknown or missing kind tag yields ErrUnknownContentsKind.
func DecodeContents(data []byte) (Contents, error) {
	var tag struct {
		Kind ContentsKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	switch tag.Kind {
	case KindFixedCards:
		var c FixedCards
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case KindRandomCards:
		var c RandomCards
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case KindRarityQuota:
		var c RarityQuota
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case KindCurrencyGrant:
		var c CurrencyGrant
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case KindCosmeticGrant:
		var c CosmeticGrant
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentsKind, tag.Kind)
	}
}

// itemAlias breaks the MarshalJSON recursion on Item.
type itemAlias Item

type itemJSON struct {
	*itemAlias
	Contents json.RawMessage `json:"contents,omitempty"`
}

// MarshalJSON encodes the item with its contents union inlined as a tagged
// "contents" object.
func (item Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{itemAlias: (*itemAlias)(&item)}
	if item.Contents != nil {
		raw, err := EncodeContents(item.Contents)
		if err != nil {
			return nil, err
		}
		out.Contents = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the item and resolves the tagged "contents" object
// into its concrete union member.
func (item *Item) UnmarshalJSON(data []byte) error {
	in := itemJSON{itemAlias: (*itemAlias)(item)}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.Contents) > 0 {
		contents, err := DecodeContents(in.Contents)
		if err != nil {
			return err
		}
		item.Contents = contents
	}
	return nil
}
