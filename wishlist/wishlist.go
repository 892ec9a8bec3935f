package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"armoire/db"
	"armoire/models"
	"armoire/products"
	"armoire/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const guestHeader = "X-Guest-ID"

// resolveOwner identifies the wishlist owner: the authenticated user when a
// token was presented, otherwise the guest id from the request header. A new
// guest id is minted and echoed back when neither exists.
func resolveOwner(w http.ResponseWriter, r *http.Request) (owner string, isGuest bool) {
	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		return userID, false
	}
	guestID := r.Header.Get(guestHeader)
	if guestID == "" {
		guestID = uuid.New().String()
	}
	w.Header().Set(guestHeader, guestID)
	return guestID, true
}

func load(ctx context.Context, owner string, isGuest bool) (*models.Wishlist, error) {
	var wl models.Wishlist
	err := db.WishlistCollection.FindOne(ctx, bson.M{"user": owner}).Decode(&wl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.Wishlist{UserID: owner, Products: []string{}, IsGuest: isGuest}, nil
	}
	if err != nil {
		return nil, err
	}
	if wl.Products == nil {
		wl.Products = []string{}
	}
	return &wl, nil
}

func save(ctx context.Context, wl *models.Wishlist) error {
	wl.UpdatedAt = time.Now()
	_, err := db.WishlistCollection.ReplaceOne(
		ctx,
		bson.M{"user": wl.UserID},
		wl,
		options.Replace().SetUpsert(true),
	)
	return err
}

// populate expands product ids into full product documents for responses.
func populate(ctx context.Context, wl *models.Wishlist) (utils.M, error) {
	items := []models.Product{}
	if len(wl.Products) > 0 {
		cursor, err := db.ProductCollection.Find(ctx, bson.M{"productId": bson.M{"$in": wl.Products}})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &items); err != nil {
			return nil, err
		}
	}
	return utils.M{
		"user":     wl.UserID,
		"isGuest":  wl.IsGuest,
		"products": items,
	}, nil
}

// GetWishlist returns the owner's wishlist with populated products.
func GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, isGuest := resolveOwner(w, r)
	wl, err := load(ctx, owner, isGuest)
	if err != nil {
		log.Println("GetWishlist load error:", err)
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}

	resp, err := populate(ctx, wl)
	if err != nil {
		log.Println("GetWishlist populate error:", err)
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AddToWishlist inserts a product id if the product exists and is not
// already present.
func AddToWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if _, err := products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("AddToWishlist product lookup error:", err)
		http.Error(w, "Error adding product to wishlist", http.StatusInternalServerError)
		return
	}

	owner, isGuest := resolveOwner(w, r)
	wl, err := load(ctx, owner, isGuest)
	if err != nil {
		log.Println("AddToWishlist load error:", err)
		http.Error(w, "Error adding product to wishlist", http.StatusInternalServerError)
		return
	}

	if !wl.Contains(req.ProductID) {
		wl.Products = append(wl.Products, req.ProductID)
		if err := save(ctx, wl); err != nil {
			log.Println("AddToWishlist save error:", err)
			http.Error(w, "Error adding product to wishlist", http.StatusInternalServerError)
			return
		}
	}

	resp, err := populate(ctx, wl)
	if err != nil {
		log.Println("AddToWishlist populate error:", err)
		http.Error(w, "Error adding product to wishlist", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// RemoveFromWishlist drops a product id.
func RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productId")

	owner, isGuest := resolveOwner(w, r)
	wl, err := load(ctx, owner, isGuest)
	if err != nil {
		log.Println("RemoveFromWishlist load error:", err)
		http.Error(w, "Error removing product from wishlist", http.StatusInternalServerError)
		return
	}

	kept := wl.Products[:0]
	for _, id := range wl.Products {
		if id != productID {
			kept = append(kept, id)
		}
	}
	wl.Products = kept

	if err := save(ctx, wl); err != nil {
		log.Println("RemoveFromWishlist save error:", err)
		http.Error(w, "Error removing product from wishlist", http.StatusInternalServerError)
		return
	}

	resp, err := populate(ctx, wl)
	if err != nil {
		log.Println("RemoveFromWishlist populate error:", err)
		http.Error(w, "Error removing product from wishlist", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ClearWishlist empties the set.
func ClearWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, isGuest := resolveOwner(w, r)
	wl, err := load(ctx, owner, isGuest)
	if err != nil {
		log.Println("ClearWishlist load error:", err)
		http.Error(w, "Error clearing wishlist", http.StatusInternalServerError)
		return
	}

	wl.Products = []string{}
	if err := save(ctx, wl); err != nil {
		log.Println("ClearWishlist save error:", err)
		http.Error(w, "Error clearing wishlist", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Wishlist cleared", "wishlist": wl})
}

// MergeWishlists unions a guest wishlist into the user's on sign-in,
// de-duplicating product ids, then deletes the guest document.
func MergeWishlists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		GuestID string `json:"guestId"`
		UserID  string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GuestID == "" || req.UserID == "" {
		http.Error(w, "guestId and userId are required", http.StatusBadRequest)
		return
	}

	userList, err := load(ctx, req.UserID, false)
	if err != nil {
		log.Println("MergeWishlists user load error:", err)
		http.Error(w, "Error merging wishlists", http.StatusInternalServerError)
		return
	}
	userList.IsGuest = false

	var guestList models.Wishlist
	err = db.WishlistCollection.FindOne(ctx, bson.M{"user": req.GuestID, "isGuest": true}).Decode(&guestList)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		// Nothing to merge; fall through and return the user list.
	case err != nil:
		log.Println("MergeWishlists guest load error:", err)
		http.Error(w, "Error merging wishlists", http.StatusInternalServerError)
		return
	default:
		userList.Merge(&guestList)
		if err := save(ctx, userList); err != nil {
			log.Println("MergeWishlists save error:", err)
			http.Error(w, "Error merging wishlists", http.StatusInternalServerError)
			return
		}
		if _, err := db.WishlistCollection.DeleteOne(ctx, bson.M{"user": req.GuestID, "isGuest": true}); err != nil {
			log.Println("MergeWishlists guest delete error:", err)
		}
	}

	resp, err := populate(ctx, userList)
	if err != nil {
		log.Println("MergeWishlists populate error:", err)
		http.Error(w, "Error merging wishlists", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
