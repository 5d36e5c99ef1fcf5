package codec

import (
	"testing"

	"storefront/testutil"
)

func TestNoBackendImports(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.BackendImportForbidden, "state code persists through domain.SlotStore only")
}
