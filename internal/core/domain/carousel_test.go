package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

func TestCarouselWrapsForward(t *testing.T) {
	t.Parallel()

	carousel := domain.NewCarousel(3, time.Hour)

	assert.Equal(t, 0, carousel.Current())
	assert.Equal(t, 1, carousel.Next())
	assert.Equal(t, 2, carousel.Next())
	assert.Equal(t, 0, carousel.Next())
}

func TestCarouselWrapsBackward(t *testing.T) {
	t.Parallel()

	carousel := domain.NewCarousel(3, time.Hour)

	assert.Equal(t, 2, carousel.Previous())
	assert.Equal(t, 1, carousel.Previous())
}

func TestCarouselGoTo(t *testing.T) {
	t.Parallel()

	carousel := domain.NewCarousel(4, time.Hour)

	assert.Equal(t, 2, carousel.GoTo(2))

	// индекс вне диапазона игнорируется
	assert.Equal(t, 2, carousel.GoTo(7))
	assert.Equal(t, 2, carousel.GoTo(-1))
	assert.Equal(t, 2, carousel.Current())
}

func TestCarouselSingleSlide(t *testing.T) {
	t.Parallel()

	carousel := domain.NewCarousel(0, time.Hour)

	assert.Equal(t, 0, carousel.Next())
	assert.Equal(t, 0, carousel.Previous())
}

func TestCarouselAutoAdvance(t *testing.T) {
	t.Parallel()

	carousel := domain.NewCarousel(3, 10*time.Millisecond)
	defer carousel.Stop()

	advanced := make(chan int, 16)
	carousel.StartAuto(func(slide int) {
		advanced <- slide
	})

	select {
	case slide := <-advanced:
		assert.Equal(t, 1, slide)
	case <-time.After(time.Second):
		t.Fatal("carousel did not auto-advance")
	}

	select {
	case slide := <-advanced:
		assert.Equal(t, 2, slide)
	case <-time.After(time.Second):
		t.Fatal("carousel did not auto-advance a second time")
	}
}

func TestCarouselStopHaltsAutoAdvance(t *testing.T) {
	t.Parallel()

	carousel := domain.NewCarousel(3, 5*time.Millisecond)

	advanced := make(chan int, 64)
	carousel.StartAuto(func(slide int) {
		advanced <- slide
	})

	select {
	case <-advanced:
	case <-time.After(time.Second):
		t.Fatal("carousel did not auto-advance")
	}

	carousel.Stop()

	// горутине даем время обработать закрытие канала
	time.Sleep(20 * time.Millisecond)
	current := carousel.Current()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, current, carousel.Current())

	// повторный Stop безопасен
	require.NotPanics(t, carousel.Stop)
}
