package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/money"
	"github.com/sel3a/sel3a/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            ref TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(12,2) NOT NULL,
            qte INT NOT NULL DEFAULT 0 CHECK (qte >= 0),
            category TEXT NOT NULL DEFAULT '',
            supplier TEXT NOT NULL DEFAULT '',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id TEXT PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            client_status TEXT NOT NULL DEFAULT 'good_client',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL REFERENCES customers(id),
            status TEXT NOT NULL,
            total_price NUMERIC(12,2) NOT NULL,
            order_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id TEXT NOT NULL REFERENCES products(id),
            quantity INT NOT NULL CHECK (quantity > 0),
            unit_price NUMERIC(12,2) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, order_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_stock ON products(qte) WHERE is_active`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, p *model.Product) (string, error) {
	const query = `INSERT INTO products (id, name, ref, description, price, qte, category, supplier, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	id := uuid.NewString()
	_, err := r.storage.pool.Exec(ctx, query,
		id, p.Name, p.Ref, p.Description, p.Price.String(), p.Quantity, p.Category, p.Supplier, p.Active)
	if err != nil {
		return "", err
	}
	return id, nil
}

const productColumns = `id, name, ref, description, price::text, qte, category, supplier, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var price string
	err := row.Scan(&p.ID, &p.Name, &p.Ref, &p.Description, &price, &p.Quantity,
		&p.Category, &p.Supplier, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Price, err = money.Parse(price)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	p, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	return r.queryProducts(ctx, query)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, id string, upd repository.ProductUpdate) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	assign := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		assign("name", *upd.Name)
	}
	if upd.Ref != nil {
		assign("ref", *upd.Ref)
	}
	if upd.Description != nil {
		assign("description", *upd.Description)
	}
	if upd.Price != nil {
		assign("price", *upd.Price)
	}
	if upd.Category != nil {
		assign("category", *upd.Category)
	}
	if upd.Supplier != nil {
		assign("supplier", *upd.Supplier)
	}

	query := `UPDATE products SET ` + strings.Join(sets, ", ") + ` WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE products SET is_active=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}

// ReserveStock decrements quantity in a single conditional statement. The
// WHERE guard makes concurrent reservations race-free: the row update only
// applies when enough units remain.
func (r *productRepository) ReserveStock(ctx context.Context, id string, qty int) error {
	const query = `UPDATE products SET qte = qte - $2, updated_at = NOW() WHERE id=$1 AND qte >= $2`
	tag, err := r.storage.pool.Exec(ctx, query, id, qty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	available, err := r.Stock(ctx, id)
	if err != nil {
		return err
	}
	return &domainErrors.InsufficientStockError{ProductID: id, Available: available, Requested: qty}
}

func (r *productRepository) RestockStock(ctx context.Context, id string, qty int) error {
	const query = `UPDATE products SET qte = qte + $2, updated_at = NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, qty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Stock(ctx context.Context, id string) (int, error) {
	const query = `SELECT qte FROM products WHERE id=$1`
	var qty int
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrProductNotFound
		}
		return 0, err
	}
	return qty, nil
}

func (r *productRepository) ListLowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active AND qte <= $1 ORDER BY qte, name`
	return r.queryProducts(ctx, query, threshold)
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (string, error) {
	id := uuid.NewString()
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (id, customer_id, status, total_price, order_date)
                             VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insertOrder,
			id, order.CustomerID, order.Status, order.TotalPrice.String(), order.OrderDate); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, unit_price)
                            VALUES ($1, $2, $3, $4)`
		for _, line := range order.Lines {
			if _, err := tx.Exec(ctx, insertItem, id, line.ProductID, line.Quantity, line.UnitPrice.String()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

const orderColumns = `o.id, o.customer_id, c.first_name || ' ' || c.last_name, o.status,
                      o.total_price::text, o.order_date, o.created_at, o.updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var total string
	err := row.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.Status,
		&total, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.TotalPrice, err = money.Parse(total)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN customers c ON c.id = o.customer_id WHERE o.id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	lines, err := r.loadLines(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	order.Lines = lines[id]
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN customers c ON c.id = o.customer_id`

	var conditions []string
	var args []any
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conditions = append(conditions, fmt.Sprintf("o.customer_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}

	if sort == model.OrderSortDateAsc {
		query += ` ORDER BY o.order_date ASC`
	} else {
		query += ` ORDER BY o.order_date DESC`
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	var ids []string
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Lines = lines[result[i].ID]
	}
	return result, nil
}

// loadLines fetches line items for a batch of orders in one query.
func (r *orderRepository) loadLines(ctx context.Context, orderIDs []string) (map[string][]model.OrderLine, error) {
	const query = `SELECT order_id, product_id, quantity, unit_price::text
                   FROM order_items WHERE order_id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[string][]model.OrderLine, len(orderIDs))
	for rows.Next() {
		var orderID, price string
		var line model.OrderLine
		if err := rows.Scan(&orderID, &line.ProductID, &line.Quantity, &price); err != nil {
			return nil, err
		}
		line.UnitPrice, err = money.Parse(price)
		if err != nil {
			return nil, err
		}
		lines[orderID] = append(lines[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateStatus asserts the observed prior status in the WHERE clause. Zero
// rows means either the order vanished or a concurrent transition moved it
// first; the re-read tells the two apart.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus) error {
	const query = `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1 AND status=$3`
	tag, err := r.storage.pool.Exec(ctx, query, id, to, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var current model.OrderStatus
		err := r.storage.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		if err != nil {
			return err
		}
		return &domainErrors.InvalidTransitionError{From: string(current), To: string(to)}
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CustomerRepository implementation ---

const customerColumns = `id, first_name, last_name, email, phone, address, client_status, is_active, created_at, updated_at`

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&c.ClientStatus, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *model.Customer) (string, error) {
	const query = `INSERT INTO customers (id, first_name, last_name, email, phone, address, client_status, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	id := uuid.NewString()
	status := c.ClientStatus
	if status == "" {
		status = model.ClientStatusGood
	}
	_, err := r.storage.pool.Exec(ctx, query,
		id, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, status, c.Active)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	c, err := scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Update(ctx context.Context, id string, upd repository.CustomerUpdate) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	assign := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FirstName != nil {
		assign("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		assign("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		assign("email", *upd.Email)
	}
	if upd.Phone != nil {
		assign("phone", *upd.Phone)
	}
	if upd.Address != nil {
		assign("address", *upd.Address)
	}

	query := `UPDATE customers SET ` + strings.Join(sets, ", ") + ` WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE customers SET is_active=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) SetClientStatus(ctx context.Context, id string, status model.ClientStatus) error {
	const query = `UPDATE customers SET client_status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrCustomerNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
