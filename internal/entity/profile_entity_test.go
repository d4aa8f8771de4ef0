package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInjuryDeduplicatesCaseInsensitive(t *testing.T) {
	p := UserProfile{Injuries: []string{"knee pain"}}

	assert.False(t, p.AddInjury("Knee Pain"))
	assert.Len(t, p.Injuries, 1)

	assert.True(t, p.AddInjury("lower back strain"))
	assert.Equal(t, []string{"knee pain", "lower back strain"}, p.Injuries)
}

func TestRemoveInjury(t *testing.T) {
	p := UserProfile{Injuries: []string{"knee pain", "shoulder impingement"}}

	assert.True(t, p.RemoveInjury("KNEE PAIN"))
	assert.Equal(t, []string{"shoulder impingement"}, p.Injuries)

	assert.False(t, p.RemoveInjury("ankle sprain"))
	assert.Equal(t, []string{"shoulder impingement"}, p.Injuries)
}

func TestAddIntolerance(t *testing.T) {
	var p UserProfile

	assert.True(t, p.AddIntolerance("lactose"))
	assert.False(t, p.AddIntolerance("Lactose"))
	assert.Equal(t, []string{"lactose"}, p.Intolerances)
}

func TestFieldReturnsNilForEmptyAttributes(t *testing.T) {
	var p UserProfile

	assert.Nil(t, p.Field("age"))
	assert.Nil(t, p.Field("injuries"))
	assert.Nil(t, p.Field("target_weight_kg"))

	p.Age = 30
	p.Injuries = []string{"knee pain"}

	assert.Equal(t, 30, p.Field("age"))
	assert.Equal(t, []string{"knee pain"}, p.Field("injuries"))
}
