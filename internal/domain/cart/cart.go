package cart

// Item is one product/size selection held in the cart. Quantity always
// stays within [1, MaxStock]; MaxStock is the stock ceiling captured from
// catalog data when the item was added.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	MaxStock  int64  `json:"maxStock"`
}

// Cart holds items in insertion order plus the slide-out panel flag.
// At most one entry exists per (ProductID, Size) pair.
type Cart struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"isOpen"`
}

func (c *Cart) find(productID, size string) int {
	for i, item := range c.Items {
		if item.ProductID == productID && item.Size == size {
			return i
		}
	}
	return -1
}

// Add merges the item into an existing entry with the same key, or appends
// it. On merge the entry's MaxStock is refreshed from the incoming item so
// the clamp always uses the most recent stock ceiling. The clamp is
// silent: callers pre-check stock before adding.
func (c *Cart) Add(item Item) {
	if item.Quantity <= 0 {
		return
	}
	if i := c.find(item.ProductID, item.Size); i >= 0 {
		entry := &c.Items[i]
		entry.MaxStock = item.MaxStock
		entry.Quantity = clamp(entry.Quantity+item.Quantity, entry.MaxStock)
		return
	}
	item.Quantity = clamp(item.Quantity, item.MaxStock)
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity for a matching entry, clamped to its
// MaxStock. A quantity of zero or less removes the entry.
func (c *Cart) SetQuantity(productID, size string, quantity int64) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}
	if i := c.find(productID, size); i >= 0 {
		c.Items[i].Quantity = clamp(quantity, c.Items[i].MaxStock)
	}
}

// Remove drops the matching entry; no-op when absent.
func (c *Cart) Remove(productID, size string) {
	if i := c.find(productID, size); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Open() {
	c.IsOpen = true
}

func (c *Cart) Close() {
	c.IsOpen = false
}

func (c *Cart) ItemsCount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func clamp(quantity, maxStock int64) int64 {
	if maxStock > 0 && quantity > maxStock {
		return maxStock
	}
	return quantity
}
