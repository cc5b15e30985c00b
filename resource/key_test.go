package resource

import "testing"

func TestListKeyFoldsScope(t *testing.T) {
	var keys KeyBuilder
	p := Pagination{Page: 1, Limit: 3}

	tenantA := keys.ListKey("users", p, RestrictedTo("1"))
	tenantB := keys.ListKey("users", p, RestrictedTo("2"))
	wildcard := keys.ListKey("users", p, Unrestricted())

	if tenantA == tenantB {
		t.Errorf("two tenants share a list key: %q", tenantA)
	}
	if tenantA == wildcard || tenantB == wildcard {
		t.Error("restricted and unrestricted list keys must differ")
	}

	if tenantA != "users:list:page=1:limit=3:tenant=1" {
		t.Errorf("unexpected key format: %q", tenantA)
	}
	if wildcard != "users:list:page=1:limit=3:tenant=*" {
		t.Errorf("unexpected wildcard key format: %q", wildcard)
	}
}

func TestListKeyDeterministic(t *testing.T) {
	var keys KeyBuilder
	p := Pagination{Page: 2, Limit: 10}

	first := keys.ListKey("products", p, Unrestricted())
	second := keys.ListKey("products", p, Unrestricted())
	if first != second {
		t.Errorf("identical parameters produced different keys: %q vs %q", first, second)
	}

	other := keys.ListKey("products", Pagination{Page: 3, Limit: 10}, Unrestricted())
	if first == other {
		t.Error("different pages must not collide")
	}
}

func TestDetailKey(t *testing.T) {
	var keys KeyBuilder

	if got := keys.DetailKey("users", "u-1"); got != "users:detail:id=u-1" {
		t.Errorf("unexpected detail key: %q", got)
	}
	if keys.DetailKey("users", "u-1") == keys.DetailKey("products", "u-1") {
		t.Error("detail keys must be namespaced by kind")
	}
}

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Pagination
		wantPage  int
		wantLimit int
	}{
		{"zero values use defaults", Pagination{}, DefaultPage, DefaultLimit},
		{"negative page clamped", Pagination{Page: -2, Limit: 5}, DefaultPage, 5},
		{"limit capped", Pagination{Page: 1, Limit: 5000}, 1, MaxLimit},
		{"valid values untouched", Pagination{Page: 4, Limit: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("Normalize() = %+v, want page=%d limit=%d", got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
