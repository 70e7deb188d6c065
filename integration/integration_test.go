package integration

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/replicatedhq/treesize/pkg/cli"
	"gopkg.in/yaml.v2"
)

type TestMetadata struct {
	Args []string `yaml:"args"`
	// Error is a substring of the expected error, empty when the run must succeed
	Error string `yaml:"error"`
}

func TestCore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "integration")
}

var _ = Describe("treesize", func() {
	integrationDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	casesDir := path.Join(integrationDir, "cases")
	files, err := ioutil.ReadDir(casesDir)
	if err != nil {
		panic(err)
	}

	for _, file := range files {
		if !file.IsDir() {
			continue
		}
		name := file.Name()

		Context(fmt.Sprintf("When the transcript in %q is run", name), func() {
			testPath := path.Join(casesDir, name)
			testOutputPath := path.Join(testPath, "tmp")
			var testMetadata TestMetadata

			BeforeEach(func() {
				// create a temporary directory within this directory to compare files with
				os.RemoveAll(testOutputPath)
				err := os.Mkdir(testOutputPath, os.ModeDir|os.ModePerm)
				Expect(err).NotTo(HaveOccurred())

				metadataBytes, err := ioutil.ReadFile(path.Join(testPath, "metadata.yaml"))
				Expect(err).NotTo(HaveOccurred())
				testMetadata = TestMetadata{}
				err = yaml.Unmarshal(metadataBytes, &testMetadata)
				Expect(err).NotTo(HaveOccurred())
			})

			AfterEach(func() {
				err := os.RemoveAll(testOutputPath)
				Expect(err).NotTo(HaveOccurred())
			})

			It("Should write output matching the expected directory", func() {
				cmd := cli.RootCmd()
				buf := new(bytes.Buffer)
				cmd.SetOutput(buf)
				cmd.SetArgs(append(testMetadata.Args,
					fmt.Sprintf("--out=%s", path.Join(testOutputPath, "out.txt")),
					"--log-level=off",
					"--no-color",
					"--no-os-exit",
					path.Join(testPath, "transcript.txt"),
				))
				err := cmd.Execute()

				if testMetadata.Error != "" {
					Expect(err).To(HaveOccurred())
					Expect(err.Error()).To(ContainSubstring(testMetadata.Error))
					return
				}
				Expect(err).NotTo(HaveOccurred())

				result, err := CompareDir(path.Join(testPath, "expected"), testOutputPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(BeTrue())
			}, 60)
		})
	}
})
