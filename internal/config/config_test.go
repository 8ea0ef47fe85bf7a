package config_test

import (
	"context"
	"time"
	"walletscan/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sethvargo/go-envconfig"
)

var _ = Describe("NewApp", func() {
	var (
		env map[string]string
		app config.App
		err error
	)

	BeforeEach(func() {
		env = map[string]string{
			"API_PORT":          "8080",
			"DB_CONNECTION_URL": "postgres://localhost:5432/walletscan",
		}
	})

	JustBeforeEach(func() {
		app, err = config.NewAppFrom(context.Background(), envconfig.MapLookuper(env))
	})

	When("only required variables are set", func() {
		It("should apply defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.PageSize).To(Equal(20))
			Expect(app.CacheDir).To(Equal("cache"))
			Expect(app.Explorer.BaseURL).To(Equal("https://api.etherscan.io/v2/api"))
			Expect(app.Explorer.ChainID).To(Equal(uint64(1)))
			Expect(app.Explorer.HeadTimeout).To(Equal(10 * time.Second))
			Expect(app.Explorer.RecentBlockThreshold).To(Equal(uint64(23632440)))
			Expect(app.Explorer.APIKey).To(BeEmpty())
		})
	})

	When("overrides are set", func() {
		BeforeEach(func() {
			env["ETHERSCAN_API_KEY"] = "key"
			env["RECENT_BLOCK_THRESHOLD"] = "100"
			env["FETCH_TIMEOUT"] = "5s"
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Explorer.APIKey).To(Equal("key"))
			Expect(app.Explorer.RecentBlockThreshold).To(Equal(uint64(100)))
			Expect(app.Explorer.FetchTimeout).To(Equal(5 * time.Second))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			delete(env, "DB_CONNECTION_URL")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("DB_CONNECTION_URL")))
		})
	})

	When("page size is not positive", func() {
		BeforeEach(func() {
			env["PAGE_SIZE"] = "0"
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("page size must be positive")))
		})
	})
})
