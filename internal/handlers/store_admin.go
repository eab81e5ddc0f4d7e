package handlers

import (
	"net/http"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/store"
)

type StoreAdminHandler struct {
	Store store.TableStore
}

func NewStoreAdminHandler(st store.TableStore) *StoreAdminHandler {
	return &StoreAdminHandler{Store: st}
}

// Reset: POST /admin/store/reset – clears a cached connection failure so the
// next request retries the handshake.
func (h *StoreAdminHandler) Reset(w http.ResponseWriter, _ *http.Request) {
	h.Store.Reset()
	httpx.Success(w, http.StatusOK, nil)
}
