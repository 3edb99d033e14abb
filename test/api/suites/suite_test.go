package suites

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server"
	"github.com/unikorn-cloud/everest-apicheck/test/api"
)

var (
	apiClient    *client.APIClient
	simulator    *server.Server
	ctx          context.Context
	config       *api.TestConfig
	expectations *checker.Expectations
)

var _ = BeforeEach(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	expectations, err = config.LoadExpectations()
	Expect(err).NotTo(HaveOccurred())

	ctx = logr.NewContext(context.Background(), GinkgoLogr)
	apiClient, simulator = api.NewTarget(ctx, config)
})

// requireSimulator skips specs that need to manipulate the target.
func requireSimulator() {
	if simulator == nil {
		Skip("requires the in-process simulator")
	}
}

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EVerest API Test Suites")
}
