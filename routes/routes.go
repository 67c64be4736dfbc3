package routes

import (
	"github.com/gin-gonic/gin"

	"mealhub-api/gate"
	"mealhub-api/handlers"
	"mealhub-api/models"
	"mealhub-api/policy"
)

// route binds one endpoint to its handler and the ordered checks that gate
// it. Checks run in declaration order: ownership checks (no store lookup)
// come before role and status checks. A nil checks slice with protected set
// means authentication only; protected=false is the public allow-list.
type route struct {
	method    string
	path      string
	handler   gin.HandlerFunc
	protected bool
	checks    []policy.Check
}

func table(h *handlers.Set) []route {
	return []route{
		// Users
		{"POST", "/users", h.Users.Register, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromBody("email")),
		}},
		{"GET", "/users", h.Users.List, true, []policy.Check{
			policy.RequireRole(models.RoleAdmin),
		}},
		{"GET", "/users/:email", h.Users.Get, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromParam("email")),
		}},
		{"PATCH", "/users/make-fraud/:email", h.Users.MakeFraud, true, []policy.Check{
			policy.RequireRole(models.RoleAdmin),
		}},

		// Meals
		{"POST", "/meals", h.Meals.Create, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromBody("chef_email")),
			policy.RequireRole(models.RoleChef),
			policy.FraudGate(models.RoleChef),
		}},
		{"GET", "/meals", h.Meals.List, false, nil},
		{"GET", "/meals/:id", h.Meals.Get, false, nil},
		{"PATCH", "/meals/:id", h.Meals.Update, true, []policy.Check{
			policy.RequireRole(models.RoleChef),
			policy.SelfOwned(policy.OwnerFromRecord("meals", "chef_email")),
		}},
		{"DELETE", "/meals/:id", h.Meals.Delete, true, []policy.Check{
			policy.RequireRole(models.RoleChef),
			policy.SelfOwned(policy.OwnerFromRecord("meals", "chef_email")),
		}},

		// Reviews
		{"POST", "/reviews", h.Reviews.Create, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromBody("reviewer_email")),
		}},
		{"GET", "/reviews", h.Reviews.List, false, nil},
		{"GET", "/reviews/:mealId", h.Reviews.ListByMeal, false, nil},
		{"PATCH", "/reviews/:id", h.Reviews.Update, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromRecord("reviews", "reviewer_email")),
		}},
		{"DELETE", "/reviews/:id", h.Reviews.Delete, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromRecord("reviews", "reviewer_email")),
		}},

		// Favorites
		{"POST", "/favorites", h.Favorites.Create, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromBody("user_email")),
		}},
		{"GET", "/favorites/:email", h.Favorites.ListByEmail, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromParam("email")),
		}},
		{"DELETE", "/favorites/:id", h.Favorites.Delete, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromRecord("favorites", "user_email")),
		}},

		// Orders
		{"POST", "/orders", h.Orders.Create, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromBody("user_email")),
			policy.FraudGate(models.RoleUser),
		}},
		{"GET", "/orders", h.Orders.List, true, nil},
		{"PATCH", "/orders/:id", h.Orders.UpdateStatus, true, []policy.Check{
			policy.RequireRole(models.RoleChef),
		}},
		{"PATCH", "/orders/:id/cancel", h.Orders.Cancel, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromRecord("orders", "user_email")),
		}},

		// Role requests
		{"POST", "/role-requests", h.RoleRequests.Create, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromBody("email")),
		}},
		{"GET", "/role-requests", h.RoleRequests.List, true, []policy.Check{
			policy.RequireRole(models.RoleAdmin),
		}},
		{"PATCH", "/role-requests/accept/:id", h.RoleRequests.Accept, true, []policy.Check{
			policy.RequireRole(models.RoleAdmin),
		}},
		{"PATCH", "/role-requests/reject/:id", h.RoleRequests.Reject, true, []policy.Check{
			policy.RequireRole(models.RoleAdmin),
		}},

		// Payments
		{"POST", "/create-payment-intent", h.Payments.CreateIntent, true, nil},
		{"POST", "/payment-success", h.Payments.RecordSuccess, false, nil},
		{"GET", "/payments/:id", h.Payments.Get, true, []policy.Check{
			policy.SelfOwned(policy.OwnerFromRecord("payments", "user_email")),
		}},

		// Admin
		{"GET", "/admin/statistics", h.Admin.Statistics, true, []policy.Check{
			policy.RequireRole(models.RoleAdmin),
		}},
	}
}

// SetupRoutes registers the whole route table under /api
func SetupRoutes(r *gin.Engine, arbiter *gate.Arbiter, h *handlers.Set) {
	api := r.Group("/api")
	for _, rt := range table(h) {
		chain := []gin.HandlerFunc{}
		if rt.protected {
			chain = append(chain, arbiter.Protect(rt.checks...)...)
		}
		chain = append(chain, rt.handler)
		api.Handle(rt.method, rt.path, chain...)
	}
}
