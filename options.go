package orderedmap

import (
	list "github.com/PrismAIO/generic-list-go"
	"github.com/inconshreveable/log15"
)

const invalidOptionMessage = `when using orderedmap.New[K,V]() with options, either provide one or several InitOption[K, V]; or a single integer which is then interpreted as a capacity hint, à la make(map[K]V, capacity).`

var discardLogger = func() log15.Logger {
	logger := log15.New("pkg", "orderedmap")
	logger.SetHandler(log15.DiscardHandler())
	return logger
}()

type initConfig[K comparable, V any] struct {
	capacity    int
	initialData []Pair[K, V]
	threshold   uint64
	logger      log15.Logger
}

// InitOption configures a map built with New.
type InitOption[K comparable, V any] func(config *initConfig[K, V])

// WithCapacity allows giving a capacity hint for the map, akin to the standard make(map[K]V, capacity).
func WithCapacity[K comparable, V any](capacity int) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.capacity = capacity
	}
}

// WithInitialData allows passing in initial data for the map.
func WithInitialData[K comparable, V any](initialData ...Pair[K, V]) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.initialData = initialData
		if c.capacity < len(initialData) {
			c.capacity = len(initialData)
		}
	}
}

// WithCompactionThreshold overrides DefaultCompactionThreshold. A threshold
// of 0 renumbers tags on every removal that leaves a gap.
func WithCompactionThreshold[K comparable, V any](threshold uint64) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.threshold = threshold
	}
}

// WithLogger sets the logger compaction passes are reported to, at debug level.
// By default nothing is logged.
func WithLogger[K comparable, V any](logger log15.Logger) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new OrderedMap.
// options can either be one or several InitOption[K, V], or a single integer,
// which is then interpreted as a capacity hint, à la make(map[K]V, capacity).
func New[K comparable, V any](options ...any) *OrderedMap[K, V] {
	config := initConfig[K, V]{
		threshold: DefaultCompactionThreshold,
		logger:    discardLogger,
	}

	if len(options) == 1 {
		if capacity, ok := options[0].(int); ok {
			config.capacity = capacity
			options = nil
		}
	}
	for _, untypedOption := range options {
		option, ok := untypedOption.(InitOption[K, V])
		if !ok {
			panic(invalidOptionMessage)
		}
		option(&config)
	}

	if config.capacity < 0 {
		config.capacity = 0
	}

	om := &OrderedMap[K, V]{
		index:     make(map[K]*list.Element[entry[K, V]], config.capacity),
		order:     list.New[entry[K, V]](),
		threshold: config.threshold,
		logger:    config.logger,
	}
	for _, pair := range config.initialData {
		om.set(pair.Key, pair.Value)
	}
	return om
}
