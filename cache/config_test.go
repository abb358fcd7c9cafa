package cache_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/cache"
)

var _ = Describe("Config", func() {
	Describe("Validate", func() {
		It("should accept power-of-two geometry", func() {
			config := cache.DefaultConfig()
			Expect(config.Validate()).To(Succeed())
		})

		It("should reject zero and negative parameters", func() {
			config := cache.Config{SizeKB: 0, Associativity: 8, LineSize: 64}
			Expect(config.Validate()).NotTo(Succeed())

			config = cache.Config{SizeKB: 32, Associativity: -1, LineSize: 64}
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject non-power-of-two parameters", func() {
			config := cache.Config{SizeKB: 24, Associativity: 8, LineSize: 64}
			Expect(config.Validate()).NotTo(Succeed())

			config = cache.Config{SizeKB: 32, Associativity: 6, LineSize: 64}
			Expect(config.Validate()).NotTo(Succeed())

			config = cache.Config{SizeKB: 32, Associativity: 8, LineSize: 96}
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject a cache smaller than one set", func() {
			config := cache.Config{SizeKB: 1, Associativity: 32, LineSize: 64}
			Expect(config.Validate()).NotTo(Succeed())
		})
	})

	Describe("File Operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "cachesim-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should save and load config", func() {
			original := cache.DefaultConfig()
			original.SizeKB = 64
			original.Associativity = 4

			path := filepath.Join(tempDir, "cache.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := cache.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.SizeKB).To(Equal(64))
			Expect(loaded.Associativity).To(Equal(4))
			Expect(loaded.LineSize).To(Equal(64))
		})

		It("should keep defaults for missing fields", func() {
			path := filepath.Join(tempDir, "partial.json")
			err := os.WriteFile(path, []byte(`{"size_kb": 128}`), 0644)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := cache.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.SizeKB).To(Equal(128))
			Expect(loaded.Associativity).To(Equal(8))
			Expect(loaded.LineSize).To(Equal(64))
		})

		It("should return error for non-existent file", func() {
			_, err := cache.LoadConfig("/nonexistent/path/cache.json")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			err := os.WriteFile(path, []byte("not valid json"), 0644)
			Expect(err).NotTo(HaveOccurred())

			_, err = cache.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
