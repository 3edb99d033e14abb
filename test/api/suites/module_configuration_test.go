package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
	"github.com/unikorn-cloud/everest-apicheck/test/api"
)

var _ = Describe("Module Configuration", func() {
	BeforeEach(func() {
		api.RestoreLogLevelOnCleanup(ctx, apiClient, expectations.ModuleID)
	})

	Context("When updating the log level", func() {
		It("should accept a valid log level", func() {
			// When: I update the module's log level
			result, err := apiClient.UpdateModuleConfig(ctx, expectations.ModuleID, &openapi.ConfigUpdateRequest{
				LogLevel: expectations.UpdatedLogLevel,
			})

			// Then: The update should succeed
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(HaveValue(BeTrue()))
		})

		It("should pass the config-update check", func() {
			Expect(checker.CheckConfigUpdate(ctx, apiClient, expectations)).To(Succeed())
		})

		It("should observe the update on a subsequent read", func() {
			// Given: The log level has been updated
			Expect(checker.CheckConfigUpdate(ctx, apiClient, expectations)).To(Succeed())

			// When: I read the module back
			detail, err := apiClient.GetModule(ctx, expectations.ModuleID)

			// Then: The new level should be reported
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Config).NotTo(BeNil())
			Expect(*detail.Config).To(HaveKeyWithValue("log_level", string(expectations.UpdatedLogLevel)))
		})

		It("should pass the round trip check and restore the original level", func() {
			Expect(checker.CheckConfigRoundTrip(ctx, apiClient, expectations)).To(Succeed())

			// The default check set assumes the initial level is in place.
			Expect(checker.CheckModuleDetails(ctx, apiClient, expectations)).To(Succeed())
		})
	})

	Context("When the update is invalid", func() {
		It("should reject an unknown log level", func() {
			requireSimulator()

			// When: I post a log level the framework does not understand
			_, err := apiClient.UpdateModuleConfig(ctx, expectations.ModuleID, &openapi.ConfigUpdateRequest{
				LogLevel: openapi.LogLevel("loud"),
			})

			// Then: The request should be rejected with 400 Bad Request
			var statusError *client.UnexpectedStatusError
			Expect(err).To(BeAssignableToTypeOf(statusError))
			Expect(err.(*client.UnexpectedStatusError).Actual).To(Equal(400)) //nolint:forcetypeassert
		})

		It("should reject an unknown module", func() {
			requireSimulator()

			_, err := apiClient.UpdateModuleConfig(ctx, api.UnknownModuleID(), &openapi.ConfigUpdateRequest{
				LogLevel: openapi.LogLevelDebug,
			})

			Expect(checker.Classify(err)).To(Equal(checker.KindUnexpectedStatus))
		})
	})
})
