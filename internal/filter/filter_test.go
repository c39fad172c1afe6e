package filter

import (
	"reflect"
	"testing"
)

func TestConditions(t *testing.T) {
	cases := []struct {
		name     string
		expr     Expr
		wantSQL  string
		wantArgs []interface{}
	}{
		{"eq", Eq("category_id", "c1"), "category_id = ?", []interface{}{"c1"}},
		{"gte", Gte("purchase_date", "2024-01-01"), "purchase_date >= ?", []interface{}{"2024-01-01"}},
		{"lte", Lte("purchase_date", "2024-01-31"), "purchase_date <= ?", []interface{}{"2024-01-31"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := tc.expr.SQL()
			if sql != tc.wantSQL {
				t.Errorf("expected %q, got %q", tc.wantSQL, sql)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("expected args %v, got %v", tc.wantArgs, args)
			}
		})
	}
}

func TestCombinators(t *testing.T) {
	t.Run("and", func(t *testing.T) {
		sql, args := And(Eq("a", 1), Eq("b", 2)).SQL()
		if sql != "(a = ? AND b = ?)" {
			t.Errorf("unexpected SQL: %q", sql)
		}
		if !reflect.DeepEqual(args, []interface{}{1, 2}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("or", func(t *testing.T) {
		sql, _ := Or(Eq("a", 1), Eq("b", 2), Eq("c", 3)).SQL()
		if sql != "(a = ? OR b = ? OR c = ?)" {
			t.Errorf("unexpected SQL: %q", sql)
		}
	})

	t.Run("nested", func(t *testing.T) {
		expr := And(
			Or(
				And(Gte("purchase_date", "from"), Lte("purchase_date", "to")),
				Gte("end_date", "from"),
				Eq("recurring", true),
			),
			Eq("category_id", "c1"),
		)
		sql, args := expr.SQL()
		want := "(((purchase_date >= ? AND purchase_date <= ?) OR end_date >= ? OR recurring = ?) AND category_id = ?)"
		if sql != want {
			t.Errorf("expected %q, got %q", want, sql)
		}
		if len(args) != 5 {
			t.Errorf("expected 5 args, got %d", len(args))
		}
	})

	t.Run("single_clause_collapses", func(t *testing.T) {
		sql, _ := And(Eq("a", 1)).SQL()
		if sql != "a = ?" {
			t.Errorf("expected no parens around single clause, got %q", sql)
		}
	})

	t.Run("empty_matches_everything", func(t *testing.T) {
		sql, args := And().SQL()
		if sql != "" || args != nil {
			t.Errorf("expected empty render, got %q %v", sql, args)
		}
	})

	t.Run("nil_clauses_skipped", func(t *testing.T) {
		sql, _ := And(nil, Eq("a", 1), nil).SQL()
		if sql != "a = ?" {
			t.Errorf("expected nils to be skipped, got %q", sql)
		}
	})

	t.Run("empty_group_inside_conjunction", func(t *testing.T) {
		sql, _ := And(Or(), Eq("a", 1)).SQL()
		if sql != "a = ?" {
			t.Errorf("expected empty group to vanish, got %q", sql)
		}
	})
}
