package dtotester

import (
	"reflect"

	"github.com/brick777/DtoTester/internal/option"
	"github.com/brick777/DtoTester/pkg/logger"
	"github.com/brick777/DtoTester/pkg/sample"
)

type Option option.Option[config]

type config struct {
	Registry *sample.Registry
	Ignored  map[string]struct{}
	Logger   *logger.Logger
}

func (c *config) Init() {
	c.Registry = sample.NewRegistry()
}

// IgnoreField excludes a single property from the verification.
func IgnoreField(name string) Option {
	return option.Func[config](func(c *config) {
		c.Ignored = addIgnored(c.Ignored, name)
	})
}

// IgnoreFields replaces the ignore set with set.
// Properties ignored by earlier options are no longer ignored.
func IgnoreFields(set map[string]struct{}) Option {
	return option.Func[config](func(c *config) {
		c.Ignored = set
	})
}

// CustomMapper registers p as the sample producer of typ.
// Types that already have a producer, including the defaults, keep it.
func CustomMapper(typ reflect.Type, p sample.Producer) Option {
	return option.Func[config](func(c *config) {
		c.Registry.Register(typ, p)
	})
}

func CustomMappers(m map[reflect.Type]sample.Producer) Option {
	return option.Func[config](func(c *config) {
		c.Registry.RegisterMap(m)
	})
}

// CustomMapperFor is the typed form of CustomMapper.
func CustomMapperFor[V any](fn func() V) Option {
	return option.Func[config](func(c *config) {
		sample.Register(c.Registry, fn)
	})
}

func WithLogger(l *logger.Logger) Option {
	return option.Func[config](func(c *config) {
		c.Logger = l
	})
}

func addIgnored(set map[string]struct{}, name string) map[string]struct{} {
	if set == nil {
		set = make(map[string]struct{})
	}
	set[name] = struct{}{}
	return set
}
