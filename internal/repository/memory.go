package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"food-ordering-backend/internal/models"
)

// InMemoryStore holds foods, orders and users in memory behind one
// lock, so the checkout write sequence and the check-then-delete of a
// food are atomic the same way the Postgres transactions are. It backs
// service and handler tests; the server itself always runs on Postgres.
type InMemoryStore struct {
	mu sync.RWMutex

	foods  map[int64]models.Food
	orders map[int64]models.Order
	users  map[int64]models.User

	nextFoodID  int64
	nextOrderID int64
	nextItemID  int64
	nextUserID  int64
}

// NewInMemoryStore creates an empty in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		foods:       make(map[int64]models.Food),
		orders:      make(map[int64]models.Order),
		users:       make(map[int64]models.User),
		nextFoodID:  1,
		nextOrderID: 1,
		nextItemID:  1,
		nextUserID:  1,
	}
}

// Foods returns a FoodRepository view of the store
func (s *InMemoryStore) Foods() *InMemoryFoodRepository {
	return &InMemoryFoodRepository{store: s}
}

// Orders returns an OrderRepository view of the store
func (s *InMemoryStore) Orders() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{store: s}
}

// Users returns a UserRepository view of the store
func (s *InMemoryStore) Users() *InMemoryUserRepository {
	return &InMemoryUserRepository{store: s}
}

func (s *InMemoryStore) hasActiveOrderItemsLocked(foodID int64) bool {
	for _, order := range s.orders {
		if !order.Status.Active() {
			continue
		}
		for _, item := range order.Items {
			if item.FoodID == foodID {
				return true
			}
		}
	}
	return false
}

// InMemoryFoodRepository implements FoodRepository over an InMemoryStore
type InMemoryFoodRepository struct {
	store *InMemoryStore
}

func (r *InMemoryFoodRepository) Create(ctx context.Context, food *models.Food) (*models.Food, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	food.ID = s.nextFoodID
	s.nextFoodID++
	s.foods[food.ID] = *food
	return food, nil
}

func (r *InMemoryFoodRepository) GetByID(ctx context.Context, id int64) (*models.Food, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	food, ok := s.foods[id]
	if !ok {
		return nil, fmt.Errorf("%w with id %d", ErrFoodNotFound, id)
	}
	return &food, nil
}

func (r *InMemoryFoodRepository) GetAll(ctx context.Context) ([]models.Food, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	foods := make([]models.Food, 0, len(s.foods))
	for _, food := range s.foods {
		foods = append(foods, food)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].ID < foods[j].ID })
	return foods, nil
}

func (r *InMemoryFoodRepository) Update(ctx context.Context, food *models.Food) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.foods[food.ID]; !ok {
		return fmt.Errorf("%w with id %d", ErrFoodNotFound, food.ID)
	}
	s.foods[food.ID] = *food
	return nil
}

func (r *InMemoryFoodRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.foods[id]; !ok {
		return fmt.Errorf("%w with id %d", ErrFoodNotFound, id)
	}
	if s.hasActiveOrderItemsLocked(id) {
		return ErrFoodReferenced
	}
	delete(s.foods, id)
	return nil
}

func (r *InMemoryFoodRepository) HasOrderItems(ctx context.Context, foodID int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		for _, item := range order.Items {
			if item.FoodID == foodID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *InMemoryFoodRepository) HasActiveOrderItems(ctx context.Context, foodID int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasActiveOrderItemsLocked(foodID), nil
}

// InMemoryOrderRepository implements OrderRepository over an InMemoryStore
type InMemoryOrderRepository struct {
	store *InMemoryStore
}

func (r *InMemoryOrderRepository) Checkout(ctx context.Context, customerName string, lines []models.OrderItemRequest) (*models.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Resolve every food before writing anything, mirroring the
	// all-or-nothing transaction of the Postgres implementation.
	for _, line := range lines {
		if _, ok := s.foods[line.FoodID]; !ok {
			return nil, fmt.Errorf("%w with id %d", ErrFoodNotFound, line.FoodID)
		}
	}

	order := models.Order{
		ID:           s.nextOrderID,
		CustomerName: customerName,
		Status:       models.StatusPending,
	}
	s.nextOrderID++

	var total float64
	for _, line := range lines {
		food := s.foods[line.FoodID]
		item := models.OrderItem{
			ID:              s.nextItemID,
			OrderID:         order.ID,
			Quantity:        line.Quantity,
			Price:           food.Price * float64(line.Quantity),
			FoodID:          food.ID,
			FoodName:        food.Name,
			FoodDescription: food.Description,
			FoodPrice:       food.Price,
		}
		s.nextItemID++
		total += item.Price
		order.Items = append(order.Items, item)
	}

	order.TotalPrice = total
	s.orders[order.ID] = order
	return cloneOrder(order), nil
}

func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w with id %d", ErrOrderNotFound, id)
	}
	return cloneOrder(order), nil
}

func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, *cloneOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *InMemoryOrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w with id %d", ErrOrderNotFound, id)
	}
	order.Status = status
	s.orders[id] = order
	return cloneOrder(order), nil
}

func (r *InMemoryOrderRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return fmt.Errorf("%w with id %d", ErrOrderNotFound, id)
	}
	delete(s.orders, id)
	return nil
}

func cloneOrder(order models.Order) *models.Order {
	clone := order
	clone.Items = append([]models.OrderItem(nil), order.Items...)
	return &clone
}

// InMemoryUserRepository implements UserRepository over an InMemoryStore
type InMemoryUserRepository struct {
	store *InMemoryStore
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = *user
	return user, nil
}

func (r *InMemoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *InMemoryUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUserRepository) HasAdmin(ctx context.Context) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}
