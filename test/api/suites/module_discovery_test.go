package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
	"github.com/unikorn-cloud/everest-apicheck/test/api"
)

var _ = Describe("Module Discovery", func() {
	Context("When listing modules", func() {
		It("should return the API module first and running", func() {
			// When: I request the list of modules
			list, err := apiClient.ListModules(ctx)

			// Then: At least one module should be returned
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Modules).NotTo(BeNil())
			Expect(*list.Modules).NotTo(BeEmpty())

			// And: The first should be the API module, running
			first := (*list.Modules)[0]
			Expect(first.Id).To(HaveValue(Equal(expectations.ModuleID)))
			Expect(first.Status).To(HaveValue(Equal(expectations.RunningStatus)))

			GinkgoWriter.Printf("Found %d modules\n", len(*list.Modules))
		})

		It("should pass the module-list check", func() {
			Expect(checker.CheckModuleList(ctx, apiClient, expectations)).To(Succeed())
		})

		It("should fail when no modules are loaded", func() {
			// Given: A target with no modules
			_, baseURL := api.StartSimulator(api.NewSeed().WithoutModules().Build())
			c := api.NewAPIClient(ctx, config, baseURL)

			// When: I run the module list check
			err := checker.CheckModuleList(ctx, c, expectations)

			// Then: The empty list should be reported
			failure, ok := checker.AsAssertionFailure(err)
			Expect(ok).To(BeTrue())
			Expect(failure.Field).To(Equal("modules.size()"))
		})

		It("should fail when the first module is stopped", func() {
			_, baseURL := api.StartSimulator(api.NewSeed().WithFirstModuleStatus(openapi.ModuleStatusStopped).Build())
			c := api.NewAPIClient(ctx, config, baseURL)

			err := checker.CheckModuleList(ctx, c, expectations)

			failure, ok := checker.AsAssertionFailure(err)
			Expect(ok).To(BeTrue())
			Expect(failure.Field).To(Equal("modules[0].status"))
			Expect(failure.Actual).To(Equal("stopped"))
		})
	})

	Context("When getting module details", func() {
		It("should return the module with its configuration", func() {
			detail, err := apiClient.GetModule(ctx, expectations.ModuleID)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Id).To(HaveValue(Equal(expectations.ModuleID)))
			Expect(detail.Status).To(HaveValue(Equal(expectations.RunningStatus)))
			Expect(detail.Config).NotTo(BeNil())
			Expect(*detail.Config).To(HaveKey("log_level"))
		})

		It("should pass the module-details check", func() {
			Expect(checker.CheckModuleDetails(ctx, apiClient, expectations)).To(Succeed())
		})
	})
})
