// Package dtotester verifies the accessor pairs of data transfer objects.
//
// For every field of a DTO it looks up the getter and setter methods,
// passes a sample value to the setter and expects the getter to return that very value.
// Primitive values must come back equal, anything else must come back as the same instance.
//
//	func TestUser(t *testing.T) {
//		dtotester.New(func(testing.TB) *User { return &User{} }).Test(t)
//	}
package dtotester

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/brick777/DtoTester/internal/option"
	"github.com/brick777/DtoTester/pkg/accessor"
	"github.com/brick777/DtoTester/pkg/logger"
	"github.com/brick777/DtoTester/pkg/reflectkit"
	"github.com/brick777/DtoTester/pkg/sample"
)

// Verifier checks the accessor pairs of the DTO type T.
type Verifier[T any] struct {
	// Make creates the DTO instance that gets verified.
	// A pointer instance is mutated in place, a struct value is copied first.
	Make func(testing.TB) T

	registry *sample.Registry
	ignored  map[string]struct{}
	logger   *logger.Logger
}

// Report is the outcome of a verification pass.
type Report struct {
	Type string
	// Verified lists the properties whose accessor pair passed the round trip.
	Verified []string
	// Skipped lists the properties without exactly two accessor candidates.
	Skipped []string
}

func New[T any](makeDTO func(testing.TB) T, opts ...Option) *Verifier[T] {
	c := option.ToConfig[config](opts)
	return &Verifier[T]{
		Make:     makeDTO,
		registry: c.Registry,
		ignored:  c.Ignored,
		logger:   c.Logger,
	}
}

// AddIgnoredField adds name to the ignore set.
func (v *Verifier[T]) AddIgnoredField(name string) {
	v.ignored = addIgnored(v.ignored, name)
}

// SetIgnoredFields replaces the ignore set with set.
//
// The verifier keeps set itself rather than a copy,
// so later AddIgnoredField calls write into the caller's map,
// and fields added before this call are no longer ignored.
func (v *Verifier[T]) SetIgnoredFields(set map[string]struct{}) {
	v.ignored = set
}

// AddCustomMapper registers p as the sample producer of typ.
// It has no effect when typ already has a producer.
func (v *Verifier[T]) AddCustomMapper(typ reflect.Type, p sample.Producer) {
	v.Registry().Register(typ, p)
}

func (v *Verifier[T]) AddCustomMappers(m map[reflect.Type]sample.Producer) {
	v.Registry().RegisterMap(m)
}

// Registry returns the sample registry of the verifier.
func (v *Verifier[T]) Registry() *sample.Registry {
	if v.registry == nil {
		v.registry = sample.NewRegistry()
	}
	return v.registry
}

// Verify runs a verification pass over a fresh DTO instance.
// The first failing property aborts the pass.
// Properties verified before the failure keep the sample values they received.
func (v *Verifier[T]) Verify(tb testing.TB) (Report, error) {
	tb.Helper()
	report := Report{Type: reflectkit.TypeOf[T]().String()}
	ctx := logger.ContextWith(tb.Context(), logger.Field("dto", report.Type))

	recv, err := v.instance(tb)
	if err != nil {
		return report, v.fail(ctx, err)
	}

	for _, field := range accessor.Properties(recv.Type(), v.ignored) {
		ctx := logger.ContextWith(ctx, logger.Field("property", field.Name))
		verified, err := v.verifyProperty(ctx, recv, field)
		if err != nil {
			return report, v.fail(ctx, err)
		}
		if verified {
			report.Verified = append(report.Verified, field.Name)
		} else {
			report.Skipped = append(report.Skipped, field.Name)
		}
	}

	v.log().Debug(ctx, "dto verification finished",
		logger.Field("verified", len(report.Verified)),
		logger.Field("skipped", len(report.Skipped)))
	return report, nil
}

func (v *Verifier[T]) instance(tb testing.TB) (reflect.Value, error) {
	if v.Make == nil {
		return reflect.Value{}, ErrNilInstance.F("no factory function is set")
	}
	dto := v.Make(tb)
	rv := reflect.ValueOf(&dto).Elem()
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}
		return rv, nil
	}
	return reflectkit.ToAddressable(rv), nil
}

func (v *Verifier[T]) verifyProperty(ctx context.Context, recv reflect.Value, field reflect.StructField) (bool, error) {
	pair, count, ok := accessor.Lookup(recv.Type(), field.Name)
	if !ok {
		v.log().Debug(ctx, "property skipped", logger.Field("candidates", count))
		return false, nil
	}
	if !pair.Complete() {
		return false, ErrAmbiguousAccessor.F("%s has no distinct getter and setter", field.Name)
	}

	param, err := pair.ParamType()
	if err != nil {
		return false, err
	}
	value, err := v.Registry().Resolve(param, field.Tag)
	if err != nil {
		return false, fmt.Errorf("sample value of %s: %w", field.Name, err)
	}
	if err := pair.Set(recv, value); err != nil {
		return false, err
	}
	got, err := pair.Get(recv)
	if err != nil {
		return false, err
	}

	if got.Type() != param {
		return false, MismatchError{
			Property:     field.Name,
			Reason:       TypeMismatch,
			Expected:     toInterface(value),
			Actual:       toInterface(got),
			ExpectedType: param,
			ActualType:   got.Type(),
		}
	}
	if !reflectkit.Same(value, got) {
		reason := IdentityMismatch
		if reflectkit.IsPrimitive(param) {
			reason = ValueMismatch
		}
		return false, MismatchError{
			Property:     field.Name,
			Reason:       reason,
			Expected:     toInterface(value),
			Actual:       toInterface(got),
			ExpectedType: param,
			ActualType:   got.Type(),
		}
	}

	v.log().Debug(ctx, "property verified", logger.Field("type", param.String()))
	return true, nil
}

func (v *Verifier[T]) fail(ctx context.Context, err error) error {
	v.log().Error(ctx, "dto verification failed", logger.ErrField(err))
	return err
}

func (v *Verifier[T]) log() *logger.Logger {
	if v.logger != nil {
		return v.logger
	}
	return &logger.Default
}

func toInterface(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
