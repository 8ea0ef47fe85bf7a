package core_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"walletscan/internal/core"
	"walletscan/internal/core/fake"
	"walletscan/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Page", func() {
	var (
		ctx      context.Context
		repo     *fake.Repository
		ingester *core.Ingester
		stored   []repository.Transaction
		page     int
		view     core.PageView
		err      error
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &fake.Repository{}
		ingester = core.NewIngester(
			zap.NewNop().Sugar(),
			repo,
			&fake.HeadResolver{},
			&fake.TransactionFetcher{},
			&fake.PayloadCache{},
			nil,
			core.Options{RecentBlockThreshold: testThreshold, PageSize: 20},
		)

		// 45 rows, newest block first, as the repository returns them.
		stored = make([]repository.Transaction, 45)
		for i := range stored {
			stored[i] = repository.Transaction{
				Hash:            fmt.Sprintf("0x%02x", i),
				FromAddress:     wallet,
				Value:           decimal.RequireFromString("1000000000000000000"),
				Timestamp:       time.Date(2022, 6, 8, 0, 0, i, 0, time.UTC),
				BlockNumber:     uint64(1000 - i),
				TxReceiptStatus: "1",
				TransactionType: string(core.SimpleTransfer),
			}
		}

		repo.ReadPageStub = func(_ context.Context, _ string, _, _ uint64, offset, limit int) ([]repository.Transaction, int64, error) {
			total := int64(len(stored))
			if offset < 0 || int64(offset) >= total {
				return []repository.Transaction{}, total, nil
			}
			return stored[offset:min(offset+limit, len(stored))], total, nil
		}
		page = 1
	})

	JustBeforeEach(func() {
		view, err = ingester.Page(ctx, walletMixed, 0, 2000, page)
	})

	It("returns the first page", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Items).To(HaveLen(20))
		Expect(view.Page).To(Equal(1))
		Expect(view.PageSize).To(Equal(20))
		Expect(view.Total).To(BeEquivalentTo(45))
		Expect(view.TotalPages).To(Equal(3))
		Expect(view.HasPrev).To(BeFalse())
		Expect(view.HasNext).To(BeTrue())
		Expect(view.Items[0].BlockNumber).To(BeEquivalentTo(1000))
	})

	It("queries the repository with the normalized address and window", func() {
		_, addr, start, end, offset, limit := repo.ReadPageArgsForCall(0)
		Expect(addr).To(Equal(wallet))
		Expect(start).To(BeZero())
		Expect(end).To(BeEquivalentTo(2000))
		Expect(offset).To(BeZero())
		Expect(limit).To(Equal(20))
	})

	It("renders each item for display", func() {
		item := view.Items[0]
		Expect(item.Hash).To(Equal("0x00"))
		Expect(item.ValueEth.Equal(decimal.NewFromInt(1))).To(BeTrue())
		Expect(item.Timestamp).To(Equal("2022-06-08 00:00:00"))
		Expect(item.Status).To(Equal(core.StatusSuccess))
		Expect(item.TransactionType).To(Equal(core.SimpleTransfer))
	})

	When("reading the last page", func() {
		BeforeEach(func() {
			page = 3
		})

		It("returns the remainder", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Items).To(HaveLen(5))
			Expect(view.HasPrev).To(BeTrue())
			Expect(view.HasNext).To(BeFalse())
			_, _, _, _, offset, _ := repo.ReadPageArgsForCall(0)
			Expect(offset).To(Equal(40))
		})
	})

	When("the page is past the end", func() {
		BeforeEach(func() {
			page = 9
		})

		It("returns no items with the totals filled in", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Items).To(BeEmpty())
			Expect(view.Total).To(BeEquivalentTo(45))
			Expect(view.TotalPages).To(Equal(3))
			Expect(view.HasNext).To(BeFalse())
		})
	})

	When("the page number is the largest int", func() {
		BeforeEach(func() {
			page = math.MaxInt
		})

		It("returns no items instead of wrapping the offset", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Items).To(BeEmpty())
			Expect(view.Total).To(BeEquivalentTo(45))
			Expect(view.TotalPages).To(Equal(3))
			Expect(view.HasPrev).To(BeTrue())
			Expect(view.HasNext).To(BeFalse())
			_, _, _, _, offset, _ := repo.ReadPageArgsForCall(0)
			Expect(offset).To(BeNumerically(">=", 45))
		})
	})

	When("the page offset would overflow by one page", func() {
		BeforeEach(func() {
			page = math.MaxInt/20 + 2
		})

		It("clamps the offset past every stored row", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Items).To(BeEmpty())
			_, _, _, _, offset, _ := repo.ReadPageArgsForCall(0)
			Expect(offset).To(Equal(math.MaxInt))
		})
	})

	When("the page number is below one", func() {
		BeforeEach(func() {
			page = 0
		})

		It("serves the first page", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Page).To(Equal(1))
			Expect(view.HasPrev).To(BeFalse())
			_, _, _, _, offset, _ := repo.ReadPageArgsForCall(0)
			Expect(offset).To(BeZero())
		})
	})

	When("nothing is stored", func() {
		BeforeEach(func() {
			stored = nil
		})

		It("returns an empty page", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Items).To(BeEmpty())
			Expect(view.Total).To(BeZero())
			Expect(view.TotalPages).To(BeZero())
			Expect(view.HasPrev).To(BeFalse())
			Expect(view.HasNext).To(BeFalse())
		})
	})

	When("the range is invalid", func() {
		JustBeforeEach(func() {
			view, err = ingester.Page(ctx, wallet, 10, 1, 1)
		})

		It("fails without reading", func() {
			Expect(err).To(MatchError(core.ErrStartAfterEnd))
		})
	})

	When("the end block does not fit the store", func() {
		var tooLarge error

		JustBeforeEach(func() {
			_, tooLarge = ingester.Page(ctx, wallet, 0, uint64(math.MaxUint64), 1)
		})

		It("rejects the range before reading", func() {
			Expect(tooLarge).To(MatchError(core.ErrBlockTooLarge))
			Expect(tooLarge).To(MatchError(core.ErrInvalidRange))
			Expect(repo.ReadPageCallCount()).To(Equal(1))
		})
	})

	When("the repository fails", func() {
		BeforeEach(func() {
			repo.ReadPageStub = nil
			repo.ReadPageReturns(nil, 0, errors.New("timeout"))
		})

		It("returns a persistence error", func() {
			Expect(err).To(MatchError(core.ErrPersistence))
		})
	})
})

var _ = Describe("WeiToEther", func() {
	DescribeTable("conversions",
		func(wei decimal.Decimal, expected string) {
			Expect(core.WeiToEther(wei).Equal(decimal.RequireFromString(expected))).To(BeTrue())
		},
		Entry("one ether", decimal.RequireFromString("1000000000000000000"), "1"),
		Entry("zero", decimal.Zero, "0"),
		Entry("unset", decimal.Decimal{}, "0"),
		Entry("one wei", decimal.NewFromInt(1), "0.000000000000000001"),
		Entry("max uint256",
			decimal.RequireFromString("115792089237316195423570985008687907853269984665640564039457584007913129639935"),
			"115792089237316195423570985008687907853269984665640564039457.584007913129639935"),
	)
})
