package navigation

import (
	"testing"

	"storefront/testutil"
)

func TestNoBackendImports(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.BackendImportForbidden, "selectors are pure projections")
}
