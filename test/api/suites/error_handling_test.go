package suites

import (
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/test/api"
)

var _ = Describe("Error Handling", func() {
	Context("When the target is unreachable", func() {
		It("should report a connection error", func() {
			// Given: A target that is no longer listening
			ts := httptest.NewServer(nil)
			baseURL := ts.URL
			ts.Close()

			c := client.New(baseURL, client.Options{RequestTimeout: time.Second})

			// When: I run a check
			err := checker.CheckSystemReady(ctx, c, expectations)

			// Then: The failure should be classified as a connection error
			Expect(checker.Classify(err)).To(Equal(checker.KindConnection))

			var connectionError *client.ConnectionError
			Expect(err).To(BeAssignableToTypeOf(connectionError))
		})
	})

	Context("When a module does not exist", func() {
		It("should report an unexpected status code", func() {
			// When: I request an unknown module
			_, err := apiClient.GetModule(ctx, api.UnknownModuleID())

			// Then: The status error should carry the actual status
			Expect(checker.Classify(err)).To(Equal(checker.KindUnexpectedStatus))
			Expect(err.(*client.UnexpectedStatusError).Expected).To(Equal(200)) //nolint:forcetypeassert
			Expect(err.(*client.UnexpectedStatusError).TraceID).To(HaveLen(32)) //nolint:forcetypeassert
		})

		It("should escape the module ID in the path", func() {
			requireSimulator()

			_, err := apiClient.GetModule(ctx, "API/../modules")

			Expect(checker.Classify(err)).To(Equal(checker.KindUnexpectedStatus))
			Expect(err.(*client.UnexpectedStatusError).Actual).To(Equal(404)) //nolint:forcetypeassert
		})
	})
})
