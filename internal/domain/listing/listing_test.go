package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zyck/property-admin/internal/domain/entity"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_InvarianteDePagina(t *testing.T) {
	items := seq(23)
	for size := 1; size <= 25; size++ {
		totalPages := (len(items) + size - 1) / size
		for page := 1; page <= totalPages; page++ {
			p := Paginate(items, page, size)
			assert.LessOrEqual(t, len(p.Items), size)
			assert.Equal(t, size*(page-1)+1, p.Items[0], "size=%d page=%d", size, page)
			if page == totalPages {
				rem := len(items) - size*(totalPages-1)
				assert.Len(t, p.Items, rem, "la última página contiene el resto")
			} else {
				assert.Len(t, p.Items, size)
			}
		}
	}
}

func TestPaginate_Metadatos(t *testing.T) {
	p := Paginate(seq(23), 3, 10)
	assert.Equal(t, []int{21, 22, 23}, p.Items)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 21, p.From)
	assert.Equal(t, 23, p.To)
	assert.Equal(t, []int{1, 2, 3}, p.Pages)
}

func TestPaginate_AcotaPagina(t *testing.T) {
	p := Paginate(seq(5), 99, 2)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, []int{5}, p.Items)

	p = Paginate(seq(5), -1, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestPaginate_Vacio(t *testing.T) {
	p := Paginate([]string{}, 1, 10)
	assert.True(t, p.Empty())
	assert.NotNil(t, p.Items)
	assert.Equal(t, 0, p.From)
	assert.Empty(t, p.Pages)
}

func TestPageWindow(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, PageWindow(2, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, PageWindow(2, 10))
	assert.Equal(t, []int{4, 5, 6, 7, 8}, PageWindow(6, 10))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, PageWindow(9, 10))
}

func TestState_CambiarTamanoReseteaPagina(t *testing.T) {
	s := NewState()
	s.Page = 3

	s.SetPageSize(25)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 25, s.PageSize)
}

func TestValidPageSize(t *testing.T) {
	for _, n := range PageSizeOptions {
		assert.True(t, ValidPageSize(n), n)
	}
	assert.False(t, ValidPageSize(7))
	assert.False(t, ValidPageSize(0))
}

func TestVisibleColumns_Cortes(t *testing.T) {
	assert.Len(t, VisibleColumns(375).Visible(), 3)
	assert.Equal(t, []string{ColInvoiceNo, ColPropertyTitle, ColPaymentAmount}, VisibleColumns(639).Visible())
	assert.Len(t, VisibleColumns(640).Visible(), 6)
	assert.Len(t, VisibleColumns(800).Visible(), 8)
	assert.False(t, VisibleColumns(1023)[ColPhone])
	assert.Equal(t, AllColumns, VisibleColumns(1280).Visible())
}

func TestFilterUsers_BuscaEnVariosCampos(t *testing.T) {
	users := []*entity.User{
		{ID: "1", FirstName: "Nazia", LastName: "Majid", Email: "nazia@example.com", City: "Lahore"},
		{ID: "2", FirstName: "Ali", LastName: "Khan", Email: "ali@example.com", PhoneNumber: "0300123"},
	}
	assert.Len(t, FilterUsers(users, ""), 2)
	assert.Equal(t, "1", FilterUsers(users, "LAHORE")[0].ID)
	assert.Equal(t, "2", FilterUsers(users, "0300")[0].ID)
	assert.Empty(t, FilterUsers(users, "karachi"))
}

func TestSortUsers_EstableYDireccion(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []*entity.User{
		{ID: "a", FirstName: "b", CreatedAt: base.Add(time.Hour)},
		{ID: "b", FirstName: "a", CreatedAt: base},
		{ID: "c", FirstName: "a", CreatedAt: base.Add(2 * time.Hour)},
	}
	out, err := SortUsers(users, UserSortFirstName, true)
	assert.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, []string{out[0].ID, out[1].ID, out[2].ID})

	out, err = SortUsers(users, "", false)
	assert.NoError(t, err)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", users[0].ID, "la entrada no se modifica")

	_, err = SortUsers(users, "phone", true)
	assert.ErrorIs(t, err, ErrUnknownUserSort)
}
