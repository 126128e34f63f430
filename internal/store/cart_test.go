package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddIncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	shirt := SeedProducts()[1]

	cart.Add(shirt)
	cart.Add(shirt)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()
	shirt := SeedProducts()[1]
	cart.Add(shirt)

	cart.SetQuantity(shirt.ID, 5)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 5, cart.Items()[0].Quantity)
}

func TestCartQuantityBelowOneRemovesLine(t *testing.T) {
	cart := NewCart()
	shirt := SeedProducts()[1]
	cart.Add(shirt)

	cart.SetQuantity(shirt.ID, 0)

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Count())
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	products := SeedProducts()
	cart.Add(products[0]) // 1200
	cart.Add(products[1]) // 350
	cart.SetQuantity(products[1].ID, 2)

	assert.InDelta(t, 1900, cart.Total(), 0.001)
	assert.Equal(t, 3, cart.Count())
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	products := SeedProducts()
	cart.Add(products[0])
	cart.Add(products[1])

	cart.Remove(products[0].ID)
	cart.Remove("unknown")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, products[1].ID, items[0].ID)
}
