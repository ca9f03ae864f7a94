package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_StartsAtHome(t *testing.T) {
	n := New()
	assert.Equal(t, Entry{Route: Home}, n.Current())
	assert.Equal(t, 1, n.Depth())
}

func TestNavigator_NavigateAndBack(t *testing.T) {
	var entered, left []Entry
	n := New(
		OnEnter(func(e Entry) { entered = append(entered, e) }),
		OnLeave(func(e Entry) { left = append(left, e) }),
	)

	n.Navigate(RecipeDetails, "52772")
	n.Navigate(RecipeDetails, "52959")
	assert.Equal(t, Entry{Route: RecipeDetails, ID: "52959"}, n.Current())
	assert.Equal(t, 3, n.Depth())

	assert.True(t, n.Back())
	assert.Equal(t, "52772", n.Current().ID)
	assert.True(t, n.Back())
	assert.Equal(t, Home, n.Current().Route)

	assert.Equal(t, []Entry{
		{Route: RecipeDetails, ID: "52772"},
		{Route: RecipeDetails, ID: "52959"},
	}, entered)
	assert.Equal(t, []Entry{
		{Route: RecipeDetails, ID: "52959"},
		{Route: RecipeDetails, ID: "52772"},
	}, left)
}

func TestNavigator_BackAtHome(t *testing.T) {
	calls := 0
	n := New(OnLeave(func(Entry) { calls++ }))

	assert.False(t, n.Back())
	assert.Equal(t, 1, n.Depth())
	assert.Zero(t, calls)
}
