package suites

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/session"
	"github.com/unikorn-cloud/everest-apicheck/test/api"
)

// sessionInfoServer serves a fixed session_info body.
func sessionInfoServer(body string) string {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	DeferCleanup(ts.Close)

	return ts.URL
}

var _ = Describe("Session Telemetry", func() {
	Context("When a car is charging", func() {
		It("should report telemetry within bounds", func() {
			// When: I request the session info
			info, err := apiClient.SessionInfo(ctx)

			// Then: Every field should be present
			Expect(err).NotTo(HaveOccurred())
			Expect(info.EnergySessionKWh).To(HaveValue(BeNumerically(">=", 0)))
			Expect(info.PowerSessionKW).To(HaveValue(BeNumerically(">=", 0)))
			Expect(info.BatteryTemperatureC).To(HaveValue(BeNumerically(">=", -10)))
			Expect(info.BatteryTemperatureC).To(HaveValue(BeNumerically("<=", 70)))
			Expect(info.ChargingTimeS).To(HaveValue(BeNumerically(">=", 0)))
		})

		It("should pass the session-info check", func() {
			Expect(checker.CheckSessionInfo(ctx, apiClient, expectations)).To(Succeed())
		})

		It("should accumulate energy over time", func() {
			requireSimulator()

			first, err := apiClient.SessionInfo(ctx)
			Expect(err).NotTo(HaveOccurred())

			Eventually(func(g Gomega) {
				next, err := apiClient.SessionInfo(ctx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(*next.EnergySessionKWh).To(BeNumerically(">", *first.EnergySessionKWh))
			}).Should(Succeed())
		})
	})

	Context("When no car is charging", func() {
		It("should report zero power", func() {
			_, baseURL := api.StartSimulator(api.NewSeed().WithSession(session.Parameters{
				AmbientTemperatureC: 20,
			}).Build())
			c := api.NewAPIClient(ctx, config, baseURL)

			info, err := c.SessionInfo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.PowerSessionKW).To(HaveValue(BeZero()))
			Expect(info.BatteryTemperatureC).To(HaveValue(BeNumerically("==", 20)))
		})
	})

	Context("When telemetry is at the temperature limits", func() {
		DescribeTable("should treat the bounds as inclusive",
			func(temperature string) {
				baseURL := sessionInfoServer(`{"energy_session_kWh":0,"power_session_kW":0,"battery_temperature_C":` + temperature + `,"charging_time_s":0}`)
				c := client.New(baseURL, client.Options{})

				Expect(checker.CheckSessionInfo(ctx, c, expectations)).To(Succeed())
			},
			Entry("minimum", "-10"),
			Entry("maximum", "70"),
		)
	})

	Context("When telemetry is out of bounds", func() {
		DescribeTable("should fail naming the field",
			func(body, field string) {
				c := client.New(sessionInfoServer(body), client.Options{})

				err := checker.CheckSessionInfo(ctx, c, expectations)

				failure, ok := checker.AsAssertionFailure(err)
				Expect(ok).To(BeTrue())
				Expect(failure.Field).To(Equal(field))
			},
			Entry("negative energy", `{"energy_session_kWh":-0.1,"power_session_kW":0,"battery_temperature_C":20,"charging_time_s":0}`, "energy_session_kWh"),
			Entry("negative power", `{"energy_session_kWh":0,"power_session_kW":-1,"battery_temperature_C":20,"charging_time_s":0}`, "power_session_kW"),
			Entry("too cold", `{"energy_session_kWh":0,"power_session_kW":0,"battery_temperature_C":-10.5,"charging_time_s":0}`, "battery_temperature_C"),
			Entry("too hot", `{"energy_session_kWh":0,"power_session_kW":0,"battery_temperature_C":70.1,"charging_time_s":0}`, "battery_temperature_C"),
			Entry("negative charging time", `{"energy_session_kWh":0,"power_session_kW":0,"battery_temperature_C":20,"charging_time_s":-1}`, "charging_time_s"),
			Entry("missing field", `{"power_session_kW":0,"battery_temperature_C":20,"charging_time_s":0}`, "energy_session_kWh"),
			Entry("wrong type", `{"energy_session_kWh":"lots","power_session_kW":0,"battery_temperature_C":20,"charging_time_s":0}`, "energy_session_kWh"),
			Entry("null body", `null`, "$"),
		)

		It("should fail schema validation when enabled", func() {
			baseURL := sessionInfoServer(`{"energy_session_kWh":0,"power_session_kW":0,"battery_temperature_C":90,"charging_time_s":0}`)
			c := api.NewAPIClient(ctx, &api.TestConfig{ValidateSchema: true}, baseURL)

			err := checker.CheckSessionInfo(ctx, c, expectations)

			failure, ok := checker.AsAssertionFailure(err)
			Expect(ok).To(BeTrue())
			Expect(failure.Field).To(Equal("$"))
		})
	})
})
