package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	usermodels "table-booking-backend/internal/features/user/models"
)

type testResource struct {
	kind  string
	owner int64
}

func (r testResource) ResourceKind() string { return r.kind }
func (r testResource) ResourceOwner() int64 { return r.owner }

func TestCanBooking(t *testing.T) {
	ownBooking := testResource{kind: KindBooking, owner: 1}
	otherBooking := testResource{kind: KindBooking, owner: 2}

	owner := &usermodels.User{ID: 1}
	moderator := &usermodels.User{ID: 3, IsModerator: true}
	stranger := &usermodels.User{ID: 4}

	tests := []struct {
		name   string
		actor  *usermodels.User
		action Action
		res    Resource
		want   bool
	}{
		{"owner views own", owner, ActionView, ownBooking, true},
		{"owner updates own", owner, ActionUpdate, ownBooking, true},
		{"owner deletes own", owner, ActionDelete, ownBooking, true},
		{"stranger views other", stranger, ActionView, otherBooking, false},
		{"stranger deletes other", stranger, ActionDelete, otherBooking, false},
		{"moderator views other", moderator, ActionView, otherBooking, true},
		{"moderator deletes other", moderator, ActionDelete, otherBooking, true},
		{"moderator toggles other", moderator, ActionToggle, otherBooking, true},
		// Редактирование чужого бронирования запрещено даже модератору
		{"moderator updates other", moderator, ActionUpdate, otherBooking, false},
		{"nil actor", nil, ActionView, ownBooking, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.actor, tt.action, tt.res))
		})
	}
}

func TestCanQuestion(t *testing.T) {
	question := testResource{kind: KindQuestion}

	staff := &usermodels.User{ID: 1, IsStaff: true}
	superuser := &usermodels.User{ID: 2, IsSuperuser: true}
	moderator := &usermodels.User{ID: 3, IsModerator: true}
	regular := &usermodels.User{ID: 4}

	assert.True(t, Can(staff, ActionUpdate, question))
	assert.True(t, Can(staff, ActionDelete, question))
	assert.True(t, Can(superuser, ActionDelete, question))

	// Модератор бронирований не управляет вопросами
	assert.False(t, Can(moderator, ActionDelete, question))
	assert.False(t, Can(regular, ActionUpdate, question))
	assert.False(t, Can(nil, ActionView, question))
}

func TestCanUnknownKind(t *testing.T) {
	user := &usermodels.User{ID: 1, IsSuperuser: true}
	assert.False(t, Can(user, ActionView, testResource{kind: "unknown", owner: 1}))
	assert.False(t, Can(user, ActionView, nil))
}
