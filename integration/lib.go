package integration

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/gomega"
	"github.com/pmezard/go-difflib/difflib"
)

// CompareDir returns false if the two directories have different contents
func CompareDir(expected, actual string) (bool, error) {
	expectedDir, err := ioutil.ReadDir(expected)
	Expect(err).NotTo(HaveOccurred())

	actualDir, err := ioutil.ReadDir(actual)
	Expect(err).NotTo(HaveOccurred())

	expectedMap := make(map[string]os.FileInfo)
	expectedFilenames := make(map[string]struct{})
	for _, file := range expectedDir {
		expectedMap[file.Name()] = file
		expectedFilenames[file.Name()] = struct{}{}
	}

	actualMap := make(map[string]os.FileInfo)
	actualFilenames := make(map[string]struct{})
	for _, file := range actualDir {
		actualMap[file.Name()] = file
		actualFilenames[file.Name()] = struct{}{}
	}

	Expect(actualFilenames).To(Equal(expectedFilenames), fmt.Sprintf("Contents of directories %s (expected) and %s (actual) did not match", expected, actual))

	for name, expectedFile := range expectedMap {
		actualFile, ok := actualMap[name]
		Expect(ok).To(BeTrue())
		Expect(actualFile.IsDir()).To(Equal(expectedFile.IsDir()))

		expectedFilePath := filepath.Join(expected, expectedFile.Name())
		actualFilePath := filepath.Join(actual, actualFile.Name())

		if expectedFile.IsDir() {
			result, err := CompareDir(expectedFilePath, actualFilePath)
			if !result || err != nil {
				return result, err
			}
			continue
		}

		diffText, err := diffFiles(expectedFilePath, actualFilePath)
		Expect(err).NotTo(HaveOccurred())
		Expect(diffText).To(BeEmpty(), fmt.Sprintf("Contents of files %s (expected) and %s (actual) did not match", expectedFilePath, actualFilePath))
	}

	return true, nil
}

// diffFiles returns a unified diff of two files, ignoring trailing newlines
func diffFiles(expected, actual string) (string, error) {
	expectedBytes, err := ioutil.ReadFile(expected)
	if err != nil {
		return "", err
	}
	actualBytes, err := ioutil.ReadFile(actual)
	if err != nil {
		return "", err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.TrimRight(string(expectedBytes), "\n")),
		B:        difflib.SplitLines(strings.TrimRight(string(actualBytes), "\n")),
		FromFile: "expected contents",
		ToFile:   "actual contents",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
