package reaction

import (
	"testing"

	"github.com/google/uuid"
)

func TestToggleLikeTransitions(t *testing.T) {
	u := uuid.New()
	s := &State{}

	if got := s.ToggleLike(u); got != VoteLiked {
		t.Fatalf("expected LIKED after first toggle, got %s", got)
	}
	if s.LikeCount != 1 || len(s.LikedBy) != 1 {
		t.Fatalf("expected one like, got count=%d set=%d", s.LikeCount, len(s.LikedBy))
	}

	if got := s.ToggleLike(u); got != VoteNone {
		t.Fatalf("expected NONE after second toggle, got %s", got)
	}
	if s.LikeCount != 0 || len(s.LikedBy) != 0 {
		t.Fatalf("expected likes cleared, got count=%d set=%d", s.LikeCount, len(s.LikedBy))
	}
}

func TestToggleLikeFromDisliked(t *testing.T) {
	u := uuid.New()
	s := &State{}

	s.ToggleDislike(u)
	if got := s.ToggleLike(u); got != VoteLiked {
		t.Fatalf("expected LIKED, got %s", got)
	}
	if s.LikeCount != 1 || s.DislikeCount != 0 {
		t.Fatalf("expected likes=1 dislikes=0, got %d/%d", s.LikeCount, s.DislikeCount)
	}
	if s.VoteOf(u) != VoteLiked {
		t.Fatalf("expected user in likedBy only")
	}
	if !s.Consistent() {
		t.Fatal("state inconsistent after Disliked→Liked")
	}
}

func TestToggleDislikeFromLiked(t *testing.T) {
	u := uuid.New()
	s := &State{}

	s.ToggleLike(u)
	if got := s.ToggleDislike(u); got != VoteDisliked {
		t.Fatalf("expected DISLIKED, got %s", got)
	}
	if s.LikeCount != 0 || s.DislikeCount != 1 {
		t.Fatalf("expected likes=0 dislikes=1, got %d/%d", s.LikeCount, s.DislikeCount)
	}
	if s.VoteOf(u) != VoteDisliked {
		t.Fatalf("expected user in dislikedBy only")
	}
}

func TestEndToEndWalk(t *testing.T) {
	u := uuid.New()
	s := &State{}

	s.ToggleDislike(u)
	if s.DislikeCount != 1 || s.VoteOf(u) != VoteDisliked {
		t.Fatalf("after dislike: count=%d vote=%s", s.DislikeCount, s.VoteOf(u))
	}
	s.ToggleLike(u)
	if s.LikeCount != 1 || s.DislikeCount != 0 || s.VoteOf(u) != VoteLiked {
		t.Fatalf("after like: likes=%d dislikes=%d vote=%s", s.LikeCount, s.DislikeCount, s.VoteOf(u))
	}
	s.ToggleLike(u)
	if s.LikeCount != 0 || s.VoteOf(u) != VoteNone {
		t.Fatalf("after second like: likes=%d vote=%s", s.LikeCount, s.VoteOf(u))
	}
}

func TestInvariantHoldsUnderArbitrarySequences(t *testing.T) {
	users := make([]uuid.UUID, 5)
	for i := range users {
		users[i] = uuid.New()
	}
	s := &State{}
	// deterministic pseudo-random walk over both toggles and all users
	seq := []struct {
		user int
		like bool
	}{
		{0, true}, {1, false}, {0, false}, {2, true}, {1, true},
		{3, false}, {0, true}, {4, true}, {2, false}, {3, false},
		{4, false}, {1, true}, {2, true}, {0, false}, {3, true},
	}
	for i, step := range seq {
		if step.like {
			s.ToggleLike(users[step.user])
		} else {
			s.ToggleDislike(users[step.user])
		}
		if !s.Consistent() {
			t.Fatalf("invariant broken at step %d: likes=%d/%d dislikes=%d/%d",
				i, s.LikeCount, len(s.LikedBy), s.DislikeCount, len(s.DislikedBy))
		}
		for _, u := range users {
			if containsID(s.LikedBy, u) && containsID(s.DislikedBy, u) {
				t.Fatalf("user %s in both sets at step %d", u, i)
			}
		}
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestVotesAreIndependentPerUser(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	s := &State{}

	s.ToggleLike(u1)
	s.ToggleDislike(u2)
	if s.VoteOf(u1) != VoteLiked || s.VoteOf(u2) != VoteDisliked {
		t.Fatalf("votes leaked across users: u1=%s u2=%s", s.VoteOf(u1), s.VoteOf(u2))
	}
	if s.LikeCount != 1 || s.DislikeCount != 1 {
		t.Fatalf("expected 1/1 counters, got %d/%d", s.LikeCount, s.DislikeCount)
	}
}
