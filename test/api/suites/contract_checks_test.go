package suites

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/test/api"
)

var _ = Describe("Contract Checks", func() {
	BeforeEach(func() {
		api.RestoreLogLevelOnCleanup(ctx, apiClient, expectations.ModuleID)
	})

	Context("When running the default checks", func() {
		It("should pass every check", func() {
			// Given: The default check set
			checks, err := checker.Select(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(checks).To(HaveLen(5))

			// When: I run them against the target
			report := checker.NewRunner(apiClient, expectations, checks).Run(ctx)

			// Then: All should pass
			var out bytes.Buffer
			Expect(report.WriteText(&out)).To(Succeed())
			GinkgoWriter.Print(out.String())

			Expect(report.OK()).To(BeTrue())
			Expect(report.Passed).To(Equal(5))
		})
	})

	Context("When the target is not ready", func() {
		It("should report the failing check and run the rest", func() {
			_, baseURL := api.StartSimulator(api.NewSeed().NotReady().Build())
			c := api.NewAPIClient(ctx, config, baseURL)

			checks, err := checker.Select(nil)
			Expect(err).NotTo(HaveOccurred())

			report := checker.NewRunner(c, expectations, checks).Run(ctx)

			Expect(report.OK()).To(BeFalse())
			Expect(report.Failed).To(Equal(1))

			result, ok := report.Result(checker.SystemReady)
			Expect(ok).To(BeTrue())
			Expect(result.Kind).To(Equal(checker.KindAssertion))
			Expect(result.Field).To(Equal("ready"))

			var out bytes.Buffer
			Expect(report.WriteJSON(&out)).To(Succeed())

			var decoded map[string]interface{}
			Expect(json.Unmarshal(out.Bytes(), &decoded)).To(Succeed())
			Expect(decoded).To(HaveKey("results"))
		})
	})
})
