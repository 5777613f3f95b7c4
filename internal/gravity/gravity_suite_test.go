package gravity_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGravity(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gravity Suite")
}
