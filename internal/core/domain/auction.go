package domain

import "time"

// AuctionStatus represents the lifecycle state of an auction.
type AuctionStatus string

const (
	AuctionScheduled AuctionStatus = "scheduled"
	AuctionActive    AuctionStatus = "active"
	AuctionFinished  AuctionStatus = "finished"
	AuctionCancelled AuctionStatus = "cancelled"
)

// validAuctionTransitions declares the allowed state machine transitions.
// The scheduling and bidding engines that drive them are not built yet;
// the table is the contract they will enforce.
var validAuctionTransitions = map[AuctionStatus][]AuctionStatus{
	AuctionScheduled: {AuctionActive, AuctionCancelled},
	AuctionActive:    {AuctionFinished, AuctionCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s AuctionStatus) CanTransitionTo(next AuctionStatus) bool {
	for _, allowed := range validAuctionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AuctionEntryMode controls who may join an auction.
type AuctionEntryMode string

const (
	EntryPublic     AuctionEntryMode = "public"
	EntryInviteOnly AuctionEntryMode = "invite_only"
)

// AuctionRosterRole is the capacity in which a user joins an auction.
type AuctionRosterRole string

const (
	RosterParticipant AuctionRosterRole = "participant"
	RosterSpectator   AuctionRosterRole = "spectator"
)

// TransactionStatus is the settlement state of a post-auction payment.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionFailed     TransactionStatus = "failed"
	TransactionRefunded   TransactionStatus = "refunded"
)

// AuctionConfig captures the per-auction participation rules.
type AuctionConfig struct {
	MaxParticipants          int              `json:"max_participants" bson:"max_participants"`
	EntryMode                AuctionEntryMode `json:"entry_mode" bson:"entry_mode"`
	ParticipantSpendingLimit float64          `json:"participant_spending_limit" bson:"participant_spending_limit"`
	AllowAnonymousSpectators bool             `json:"allow_anonymous_spectators" bson:"allow_anonymous_spectators"`
}

// Auction is the aggregate root for a single sale event.
type Auction struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	HostID      string        `json:"host_id" bson:"host_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	StartTime   time.Time     `json:"start_time" bson:"start_time"`
	EndTime     time.Time     `json:"end_time" bson:"end_time"`
	Config      AuctionConfig `json:"config" bson:"config"`
	Status      AuctionStatus `json:"status" bson:"status"`
}

// AuctionItem is a single lot offered within an auction.
type AuctionItem struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	AuctionID   string   `json:"auction_id" bson:"auction_id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	BasePrice   float64  `json:"base_price" bson:"base_price"`
	Images      []string `json:"images" bson:"images"`
}
