package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrev_Wraparound(t *testing.T) {
	p := Period{Month: time.January, Year: 2024}

	got := p.Prev()
	assert.Equal(t, Period{Month: time.December, Year: 2023}, got)
}

func TestNext_Wraparound(t *testing.T) {
	p := Period{Month: time.December, Year: 2024}

	got := p.Next()
	assert.Equal(t, Period{Month: time.January, Year: 2025}, got)
}

func TestPrevNext_MidYear(t *testing.T) {
	p := Period{Month: time.June, Year: 2024}

	assert.Equal(t, Period{Month: time.May, Year: 2024}, p.Prev())
	assert.Equal(t, Period{Month: time.July, Year: 2024}, p.Next())
}

func TestPrevNext_Inverse(t *testing.T) {
	p := Period{Month: time.January, Year: 2024}

	assert.Equal(t, p, p.Prev().Next())
	assert.Equal(t, p, p.Next().Prev())
}

func TestArbitrarilyFarNavigation(t *testing.T) {
	p := Period{Month: time.March, Year: 2024}
	for i := 0; i < 60; i++ {
		p = p.Prev()
	}
	assert.Equal(t, Period{Month: time.March, Year: 2019}, p)
}

func TestCurrent(t *testing.T) {
	now := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, Period{Month: time.March, Year: 2024}, Current(now))
}

func TestContains(t *testing.T) {
	p := Period{Month: time.March, Year: 2024}

	assert.True(t, p.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "2024-03", Period{Month: time.March, Year: 2024}.String())
	assert.Equal(t, "0099-12", Period{Month: time.December, Year: 99}.String())
}
