package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueRange_Stepped(t *testing.T) {
	cases := []struct {
		r    ValueRange
		want bool
	}{
		{ValueRange{0, 1}, false},
		{ValueRange{0, 100}, true},
		{ValueRange{-100, 100}, true},
		{ValueRange{0, 1.0001}, false},
		{ValueRange{-1, 1}, false},
		{ValueRange{0.5, 10.5}, false},
		{ValueRange{0, 2}, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.r.Stepped(), "%+v", c.r)
	}
}

func TestValueRange_FormatSnapClamp(t *testing.T) {
	stepped := ValueRange{-100, 100}
	assert.Equal(t, "42", stepped.Format(42.8))
	assert.Equal(t, 42.0, stepped.Snap(42.8))
	assert.Equal(t, -42.0, stepped.Snap(-42.8))
	assert.Equal(t, 100.0, stepped.Clamp(250))

	assert.Equal(t, "0.99", UnitRange.Format(0.987))
	assert.Equal(t, 0.987, UnitRange.Snap(0.987))
	assert.Equal(t, 0.0, UnitRange.Clamp(-3))
}

func TestPageInfo_SelectedIndex(t *testing.T) {
	p := &PageInfo{Items: []*ItemInfo{{Name: "a"}, {Name: "b", Selected: true}}}
	assert.Equal(t, 1, p.SelectedIndex())
	assert.Nil(t, p.Item(5))
	assert.Nil(t, p.Item(-1))
	assert.Equal(t, "a", p.Item(0).Name)

	var nilPage *PageInfo
	assert.Equal(t, -1, nilPage.SelectedIndex())
}
