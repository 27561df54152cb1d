package dtotester

import (
	"testing"

	"github.com/brick777/DtoTester/pkg/reflectkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

var _ testcase.Suite = (*Verifier[struct{}])(nil)

func (v *Verifier[T]) Test(t *testing.T)      { v.Spec(testcase.NewSpec(t)) }
func (v *Verifier[T]) Benchmark(b *testing.B) { v.Spec(testcase.NewSpec(b)) }

// Spec registers the accessor round trip of T as a testcase test.
func (v *Verifier[T]) Spec(s *testcase.Spec) {
	s.Describe(reflectkit.TypeOf[T]().String(), func(s *testcase.Spec) {
		s.Test("getters return what the setters received", func(t *testcase.T) {
			report, err := v.Verify(t)
			assert.NoError(t, err)
			t.Logf("verified: %v, skipped: %v", report.Verified, report.Skipped)
		})
	})
}
