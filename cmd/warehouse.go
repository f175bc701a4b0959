package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
)

// TableTemplate defines a table's schema for DDL generation.
type TableTemplate struct {
	Name        string
	Columns     []ColumnDef
	Indexes     []IndexDef
	ForeignKeys []FKDef
}

// ColumnDef defines a single column.
type ColumnDef struct {
	Name     string
	Type     string
	Nullable bool
}

// IndexDef defines an index.
type IndexDef struct {
	Name    string
	Columns []string
	Unique  bool
}

// FKDef defines a foreign key reference.
type FKDef struct {
	Column    string
	RefTable  string
	RefColumn string
}

// warehouseTables returns the retail schema. IDs are plain INTEGER primary
// keys since the generator assigns them itself.
func warehouseTables() []TableTemplate {
	return []TableTemplate{
		{
			Name: "suppliers",
			Columns: []ColumnDef{
				{Name: "supplier_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "supplier_name", Type: "VARCHAR(255)"},
				{Name: "contact_name", Type: "VARCHAR(200)"},
				{Name: "email", Type: "VARCHAR(255)"},
				{Name: "phone_number", Type: "VARCHAR(30)"},
				{Name: "address_state", Type: "VARCHAR(100)"},
				{Name: "address_city", Type: "VARCHAR(100)"},
				{Name: "latitude", Type: "DOUBLE PRECISION"},
				{Name: "longitude", Type: "DOUBLE PRECISION"},
			},
		},
		{
			Name: "products",
			Columns: []ColumnDef{
				{Name: "product_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "product_name", Type: "VARCHAR(300)"},
				{Name: "category", Type: "VARCHAR(100)"},
				{Name: "subcategory", Type: "VARCHAR(100)"},
				{Name: "brand", Type: "VARCHAR(200)"},
				{Name: "price", Type: "NUMERIC(12,2)"},
				{Name: "description", Type: "TEXT"},
				{Name: "image_url", Type: "VARCHAR(500)"},
				{Name: "inventory_level", Type: "INTEGER"},
				{Name: "supplier_id", Type: "INTEGER"},
				{Name: "average_rating", Type: "NUMERIC(3,1)"},
				{Name: "nutritional_info", Type: "JSONB", Nullable: true},
			},
			ForeignKeys: []FKDef{
				{Column: "supplier_id", RefTable: "suppliers", RefColumn: "supplier_id"},
			},
			Indexes: []IndexDef{
				{Name: "idx_products_category", Columns: []string{"category"}},
			},
		},
		{
			Name: "stores",
			Columns: []ColumnDef{
				{Name: "store_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "store_name", Type: "VARCHAR(255)"},
				{Name: "address_state", Type: "VARCHAR(100)"},
				{Name: "address_city", Type: "VARCHAR(100)"},
				{Name: "latitude", Type: "DOUBLE PRECISION"},
				{Name: "longitude", Type: "DOUBLE PRECISION"},
				{Name: "opening_hours", Type: "JSONB", Nullable: true},
				{Name: "manager_id", Type: "INTEGER"},
			},
		},
		{
			Name: "customers",
			Columns: []ColumnDef{
				{Name: "customer_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "first_name", Type: "VARCHAR(100)"},
				{Name: "last_name", Type: "VARCHAR(100)"},
				{Name: "email", Type: "VARCHAR(255)"},
				{Name: "gender", Type: "VARCHAR(10)"},
				{Name: "address_state", Type: "VARCHAR(100)"},
				{Name: "address_city", Type: "VARCHAR(100)"},
				{Name: "loyalty_member", Type: "BOOLEAN"},
			},
		},
		{
			Name: "employees",
			Columns: []ColumnDef{
				{Name: "employee_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "first_name", Type: "VARCHAR(100)"},
				{Name: "last_name", Type: "VARCHAR(100)"},
				{Name: "job_title", Type: "VARCHAR(100)"},
				{Name: "gender", Type: "VARCHAR(10)"},
				{Name: "hire_date", Type: "DATE"},
				{Name: "salary", Type: "NUMERIC(12,2)"},
			},
		},
		{
			Name: "nutrition_facts",
			Columns: []ColumnDef{
				{Name: "food_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "food_name", Type: "VARCHAR(300)"},
				{Name: "nutritional_info", Type: "JSONB", Nullable: true},
			},
			ForeignKeys: []FKDef{
				{Column: "food_id", RefTable: "products", RefColumn: "product_id"},
			},
		},
		{
			Name: "pet_profiles",
			Columns: []ColumnDef{
				{Name: "pet_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "customer_id", Type: "INTEGER"},
				{Name: "pet_type", Type: "VARCHAR(50)"},
				{Name: "pet_name", Type: "VARCHAR(100)"},
				{Name: "age", Type: "INTEGER"},
				{Name: "weight", Type: "INTEGER"},
				{Name: "activity_level", Type: "VARCHAR(20)"},
				{Name: "dietary_needs", Type: "TEXT"},
			},
			ForeignKeys: []FKDef{
				{Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
			},
			Indexes: []IndexDef{
				{Name: "idx_pet_profiles_customer_id", Columns: []string{"customer_id"}},
			},
		},
		{
			Name: "customer_service",
			Columns: []ColumnDef{
				{Name: "case_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "customer_id", Type: "INTEGER"},
				{Name: "case_type", Type: "VARCHAR(50)"},
				{Name: "case_status", Type: "VARCHAR(30)"},
				{Name: "resolution_notes", Type: "TEXT"},
				{Name: "agent_id", Type: "INTEGER"},
			},
			ForeignKeys: []FKDef{
				{Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
			},
		},
		{
			Name: "orders",
			Columns: []ColumnDef{
				{Name: "order_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "customer_id", Type: "INTEGER", Nullable: true},
				{Name: "store_id", Type: "INTEGER", Nullable: true},
				{Name: "order_date", Type: "DATE"},
				{Name: "order_type", Type: "VARCHAR(20)"},
				{Name: "payment_method", Type: "VARCHAR(30)"},
				{Name: "shipping_address_city", Type: "VARCHAR(100)", Nullable: true},
			},
			ForeignKeys: []FKDef{
				{Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
				{Column: "store_id", RefTable: "stores", RefColumn: "store_id"},
			},
			Indexes: []IndexDef{
				{Name: "idx_orders_customer_id", Columns: []string{"customer_id"}},
				{Name: "idx_orders_order_date", Columns: []string{"order_date"}},
			},
		},
		{
			Name: "order_items",
			Columns: []ColumnDef{
				{Name: "order_item_id", Type: "INTEGER PRIMARY KEY"},
				{Name: "order_id", Type: "INTEGER"},
				{Name: "product_id", Type: "INTEGER"},
				{Name: "quantity", Type: "INTEGER"},
				{Name: "price", Type: "NUMERIC(12,2)"},
			},
			ForeignKeys: []FKDef{
				{Column: "order_id", RefTable: "orders", RefColumn: "order_id"},
				{Column: "product_id", RefTable: "products", RefColumn: "product_id"},
			},
			Indexes: []IndexDef{
				{Name: "idx_order_items_order_id", Columns: []string{"order_id"}},
			},
		},
	}
}

// topologicalSort returns tables in dependency order using Kahn's algorithm.
func topologicalSort(tables []TableTemplate) []TableTemplate {
	nameSet := make(map[string]bool, len(tables))
	byName := make(map[string]TableTemplate, len(tables))
	for _, t := range tables {
		nameSet[t.Name] = true
		byName[t.Name] = t
	}

	inDegree := make(map[string]int, len(tables))
	dependents := make(map[string][]string)
	for _, t := range tables {
		if _, ok := inDegree[t.Name]; !ok {
			inDegree[t.Name] = 0
		}
		for _, fk := range t.ForeignKeys {
			if nameSet[fk.RefTable] && fk.RefTable != t.Name {
				inDegree[t.Name]++
				dependents[fk.RefTable] = append(dependents[fk.RefTable], t.Name)
			}
		}
	}

	// Seed the queue in declaration order so the result is deterministic.
	var queue []string
	for _, t := range tables {
		if inDegree[t.Name] == 0 {
			queue = append(queue, t.Name)
		}
	}

	var sorted []TableTemplate
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		sorted = append(sorted, byName[name])
		for _, child := range dependents[name] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	// If cycle detected (shouldn't happen), append remaining
	if len(sorted) < len(tables) {
		for _, t := range tables {
			found := false
			for _, s := range sorted {
				if s.Name == t.Name {
					found = true
					break
				}
			}
			if !found {
				sorted = append(sorted, t)
			}
		}
	}

	return sorted
}

// generateDDL produces the CREATE TABLE and CREATE INDEX statements for a
// template, qualified by the target schema.
func generateDDL(tmpl TableTemplate, schema string) []string {
	var stmts []string

	qualified := pgIdentifier(schema) + "." + pgIdentifier(tmpl.Name)

	var cols []string
	for _, c := range tmpl.Columns {
		col := fmt.Sprintf("  %s %s", pgIdentifier(c.Name), c.Type)
		if !c.Nullable && !strings.Contains(strings.ToUpper(c.Type), "PRIMARY KEY") {
			col += " NOT NULL"
		}
		cols = append(cols, col)
	}

	for _, fk := range tmpl.ForeignKeys {
		constraint := fmt.Sprintf("  CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s.%s(%s)",
			pgIdentifier(fmt.Sprintf("fk_%s_%s", tmpl.Name, fk.Column)),
			pgIdentifier(fk.Column),
			pgIdentifier(schema),
			pgIdentifier(fk.RefTable),
			pgIdentifier(fk.RefColumn),
		)
		cols = append(cols, constraint)
	}

	createTable := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)",
		qualified,
		strings.Join(cols, ",\n"),
	)
	stmts = append(stmts, createTable)

	for _, idx := range tmpl.Indexes {
		var quotedCols []string
		for _, c := range idx.Columns {
			quotedCols = append(quotedCols, pgIdentifier(c))
		}
		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		stmt := fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s ON %s (%s)",
			unique,
			pgIdentifier(idx.Name),
			qualified,
			strings.Join(quotedCols, ", "),
		)
		stmts = append(stmts, stmt)
	}

	return stmts
}

// pgIdentifier quotes a PostgreSQL identifier to prevent SQL injection.
func pgIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

func buildConnStr(host string, port int, user, password, db string) string {
	hostPort := host
	if port > 0 {
		hostPort = fmt.Sprintf("%s:%d", host, port)
	}
	u := &url.URL{
		Scheme:   "postgres",
		Host:     hostPort,
		Path:     "/" + db,
		RawQuery: "sslmode=prefer",
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

// warehouseLoader replaces the contents of a warehouse schema with the
// tables of one run.
type warehouseLoader interface {
	Load(ctx context.Context, schema string, tables []tableData) error
}

// pgxLoader loads a run into PostgreSQL: ensure the schema and tables exist,
// truncate everything, then bulk-copy each table in dependency order.
type pgxLoader struct {
	connStr string
}

func newPgxLoader(config *runConfig) pgxLoader {
	return pgxLoader{connStr: buildConnStr(
		config.WarehouseHost, config.WarehousePort,
		config.WarehouseUser, config.WarehousePassword, config.WarehouseDB,
	)}
}

func (l pgxLoader) Load(ctx context.Context, schema string, tables []tableData) error {
	conn, err := pgx.Connect(ctx, l.connStr)
	if err != nil {
		return fmt.Errorf("connect to warehouse: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+pgIdentifier(schema)); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}

	templates := topologicalSort(warehouseTables())
	for _, tmpl := range templates {
		for _, stmt := range generateDDL(tmpl, schema) {
			if _, err := conn.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("execute DDL for %s: %w", tmpl.Name, err)
			}
		}
	}

	byName := make(map[string]tableData, len(tables))
	for _, t := range tables {
		byName[t.name] = t
	}

	// Children first so truncation never trips a FK.
	for i := len(templates) - 1; i >= 0; i-- {
		name := templates[i].Name
		stmt := fmt.Sprintf("TRUNCATE TABLE %s.%s CASCADE", pgIdentifier(schema), pgIdentifier(name))
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("truncate %s: %w", name, err)
		}
	}

	for _, tmpl := range templates {
		table, ok := byName[tmpl.Name]
		if !ok || len(table.rows) == 0 {
			continue
		}
		copied, err := conn.CopyFrom(ctx,
			pgx.Identifier{schema, table.name},
			table.columns,
			pgx.CopyFromRows(table.rows),
		)
		if err != nil {
			return fmt.Errorf("copy into %s: %w", table.name, err)
		}
		log.Infof("loaded %d rows into %s.%s", copied, schema, table.name)
	}

	return nil
}
