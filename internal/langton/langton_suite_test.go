package langton_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLangton(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Langton Suite")
}
