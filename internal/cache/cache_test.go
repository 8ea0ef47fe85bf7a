package cache_test

import (
	"path/filepath"
	"walletscan/internal/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

var _ = Describe("FileCache", func() {
	const address = "0x4675c7e5baafbffbca748158becba61ef3b0a263"

	var (
		fs        afero.Fs
		fileCache *cache.FileCache
	)

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		fileCache = cache.NewFileCache(fs, filepath.Join("var", "cache"))
	})

	Describe("Store", func() {
		It("should create the directory and write one file per range", func() {
			path, err := fileCache.Store(address, 100, 200, []byte(`[{"hash":"0x1"}]`))
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join("var", "cache", address+"_100_200.json")))

			exists, err := afero.DirExists(fs, filepath.Join("var", "cache"))
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			data, err := afero.ReadFile(fs, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`[{"hash":"0x1"}]`))
		})

		It("should overwrite an existing entry for the same range", func() {
			_, err := fileCache.Store(address, 1, 2, []byte(`[{"hash":"0x1"}]`))
			Expect(err).NotTo(HaveOccurred())
			_, err = fileCache.Store(address, 1, 2, []byte(`[]`))
			Expect(err).NotTo(HaveOccurred())

			data, err := fileCache.Load(address, 1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`[]`))
		})

		When("the filesystem is read only", func() {
			BeforeEach(func() {
				fileCache = cache.NewFileCache(afero.NewReadOnlyFs(afero.NewMemMapFs()), "cache")
			})

			It("should return an error", func() {
				_, err := fileCache.Store(address, 1, 2, []byte(`[]`))
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Load", func() {
		When("nothing was stored for the range", func() {
			It("should return ErrNotCached", func() {
				_, err := fileCache.Load(address, 5, 6)
				Expect(err).To(MatchError(cache.ErrNotCached))
			})
		})
	})
})
