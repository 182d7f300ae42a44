package domain

import (
	"sync"
	"time"
)

// Carousel - состояние слайдера изображений детальной страницы.
// Слайды нумеруются от 0 до imageCount-1, переходы закольцованы.
// Автопрокрутка идет по фиксированному интервалу; любой ручной переход
// сбрасывает таймер. Владелец обязан вызвать Stop при демонтаже
// представления, иначе тикер и его горутина утекут.
type Carousel struct {
	mu       sync.Mutex
	count    int
	index    int
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewCarousel создает карусель из count слайдов с начальным слайдом 0.
func NewCarousel(count int, interval time.Duration) *Carousel {
	if count < 1 {
		count = 1
	}
	return &Carousel{count: count, interval: interval}
}

// Current возвращает индекс текущего слайда.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Next переходит к следующему слайду с переходом через край.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % c.count
	c.resetTimerLocked()
	return c.index
}

// Previous переходит к предыдущему слайду с переходом через край.
func (c *Carousel) Previous() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index - 1 + c.count) % c.count
	c.resetTimerLocked()
	return c.index
}

// GoTo переходит к слайду с указанным индексом. Индекс вне диапазона игнорируется.
func (c *Carousel) GoTo(index int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index >= 0 && index < c.count {
		c.index = index
		c.resetTimerLocked()
	}
	return c.index
}

// StartAuto запускает автопрокрутку. onAdvance вызывается с индексом
// нового слайда после каждого автоматического перехода. Повторный
// вызов без Stop игнорируется.
func (c *Carousel) StartAuto(onAdvance func(slide int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil {
		return
	}

	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.mu.Lock()
				c.index = (c.index + 1) % c.count
				slide := c.index
				c.mu.Unlock()
				if onAdvance != nil {
					onAdvance(slide)
				}
			}
		}
	}(c.ticker, c.done)
}

// Stop останавливает автопрокрутку и освобождает таймер.
// Безопасен при повторном вызове.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}

func (c *Carousel) resetTimerLocked() {
	if c.ticker != nil {
		c.ticker.Reset(c.interval)
	}
}
