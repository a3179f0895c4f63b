package reaction

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Vote is the reaction a single user holds against a single item.
type Vote string

const (
	VoteNone     Vote = "NONE"
	VoteLiked    Vote = "LIKED"
	VoteDisliked Vote = "DISLIKED"
)

// State holds the reaction membership sets and their counters for one
// reactable item. A user id appears in at most one of the two sets, and
// each counter equals the size of its set after every operation.
type State struct {
	LikedBy      []uuid.UUID `json:"likedBy"`
	DislikedBy   []uuid.UUID `json:"dislikedBy"`
	LikeCount    int         `json:"likeCount"`
	DislikeCount int         `json:"dislikeCount"`
}

// Reactable is an item that accepts like/dislike reactions.
type Reactable interface {
	ItemID() int64
	ReactionState() *State
}

// VoteOf reports the reaction the given user currently holds.
func (s *State) VoteOf(userID uuid.UUID) Vote {
	if lo.Contains(s.LikedBy, userID) {
		return VoteLiked
	}
	if lo.Contains(s.DislikedBy, userID) {
		return VoteDisliked
	}
	return VoteNone
}

// ToggleLike applies one like action by userID and returns the resulting
// vote: None→Liked, Liked→None, Disliked→Liked.
func (s *State) ToggleLike(userID uuid.UUID) Vote {
	switch s.VoteOf(userID) {
	case VoteLiked:
		s.removeLike(userID)
		return VoteNone
	case VoteDisliked:
		s.removeDislike(userID)
		s.addLike(userID)
		return VoteLiked
	default:
		s.addLike(userID)
		return VoteLiked
	}
}

// ToggleDislike applies one dislike action by userID and returns the
// resulting vote: None→Disliked, Disliked→None, Liked→Disliked.
func (s *State) ToggleDislike(userID uuid.UUID) Vote {
	switch s.VoteOf(userID) {
	case VoteDisliked:
		s.removeDislike(userID)
		return VoteNone
	case VoteLiked:
		s.removeLike(userID)
		s.addDislike(userID)
		return VoteDisliked
	default:
		s.addDislike(userID)
		return VoteDisliked
	}
}

// Consistent reports whether counters match set sizes and the sets are
// disjoint.
func (s *State) Consistent() bool {
	if s.LikeCount != len(s.LikedBy) || s.DislikeCount != len(s.DislikedBy) {
		return false
	}
	return len(lo.Intersect(s.LikedBy, s.DislikedBy)) == 0
}

func (s *State) addLike(userID uuid.UUID) {
	s.LikedBy = append(s.LikedBy, userID)
	s.LikeCount++
}

func (s *State) removeLike(userID uuid.UUID) {
	s.LikedBy = lo.Without(s.LikedBy, userID)
	s.LikeCount--
}

func (s *State) addDislike(userID uuid.UUID) {
	s.DislikedBy = append(s.DislikedBy, userID)
	s.DislikeCount++
}

func (s *State) removeDislike(userID uuid.UUID) {
	s.DislikedBy = lo.Without(s.DislikedBy, userID)
	s.DislikeCount--
}
