package suites

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/test/api"
)

var _ = Describe("System Readiness", func() {
	Context("When the system has started", func() {
		It("should report ready", func() {
			// When: I request the readiness status
			readiness, err := apiClient.SystemReady(ctx)

			// Then: The system should report ready
			Expect(err).NotTo(HaveOccurred())
			Expect(readiness.Ready).NotTo(BeNil())
			Expect(*readiness.Ready).To(BeTrue())
		})

		It("should pass the system-ready check", func() {
			Expect(checker.CheckSystemReady(ctx, apiClient, expectations)).To(Succeed())
		})
	})

	Context("When the system is still starting", func() {
		It("should fail the check with an assertion failure", func() {
			// Given: A target that has not completed startup
			_, baseURL := api.StartSimulator(api.NewSeed().NotReady().Build())
			c := api.NewAPIClient(ctx, config, baseURL)

			// When: I run the readiness check
			err := checker.CheckSystemReady(ctx, c, expectations)

			// Then: The failure should name the field and values
			Expect(checker.Classify(err)).To(Equal(checker.KindAssertion))

			failure, ok := checker.AsAssertionFailure(err)
			Expect(ok).To(BeTrue())
			Expect(failure.Field).To(Equal("ready"))
			Expect(failure.Actual).To(Equal("false"))
		})

		It("should become ready while waiting", func() {
			// Given: A target that becomes ready shortly
			requireSimulator()
			simulator.State().SetReady(false)

			time.AfterFunc(100*time.Millisecond, func() {
				simulator.State().SetReady(true)
			})

			// When: I wait for readiness
			// Then: The wait should complete before the timeout
			Expect(checker.WaitReady(ctx, apiClient, 5*time.Second, 20*time.Millisecond)).To(Succeed())
		})

		It("should time out waiting if never ready", func() {
			_, baseURL := api.StartSimulator(api.NewSeed().NotReady().Build())
			c := api.NewAPIClient(ctx, config, baseURL)

			err := checker.WaitReady(ctx, c, 100*time.Millisecond, 20*time.Millisecond)
			Expect(err).To(MatchError(checker.ErrNotReady))
		})
	})
})
