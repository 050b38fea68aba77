package services

import (
	"log"
	"tradehub/entities"
	"tradehub/models"
	"tradehub/repository"
)

// Bottom navigation tabs are reachable from every main screen.
var tabScreens = map[entities.Screen]bool{
	entities.ScreenHome:    true,
	entities.ScreenOrders:  true,
	entities.ScreenCart:    true,
	entities.ScreenProfile: true,
}

// Remaining screens are only reachable from the screens listed here.
// The order confirmation and the pre-login screens are never a direct
// navigation target: the gate and order placement move the user there.
var navEdges = map[entities.Screen]map[entities.Screen]bool{
	entities.ScreenProduct: {
		entities.ScreenHome:     true,
		entities.ScreenCategory: true,
	},
	entities.ScreenCategory: {
		entities.ScreenHome: true,
	},
	entities.ScreenAddressManagement: {
		entities.ScreenProfile: true,
	},
	entities.ScreenHelpSupport: {
		entities.ScreenProfile: true,
	},
}

type NavigationService struct {
	nr  repository.NavRepository
	sr  repository.SessionRepository
	str repository.StoreRepository
	ar  repository.AddressRepository
	cr  repository.CatalogRepository
}

func NewNavigationService(navRepo repository.NavRepository, sessionRepo repository.SessionRepository, store repository.StoreRepository, addressRepo repository.AddressRepository, catalogRepo repository.CatalogRepository) NavigationService {
	return NavigationService{
		nr:  navRepo,
		sr:  sessionRepo,
		str: store,
		ar:  addressRepo,
		cr:  catalogRepo,
	}
}

// Gate resolves the first unsatisfied onboarding step.
func (ns *NavigationService) Gate(sessionId string) (status entities.GateStatus, err error) {
	_, err = ns.str.Get(locationAskedKey, &status.LocationAsked)
	if err != nil {
		return
	}
	if sessionId != "" {
		status.LoggedIn, err = ns.sr.CheckSession(sessionId)
		if err != nil {
			return
		}
	}
	if status.LoggedIn {
		status.Phone, _, err = ns.sr.GetSessionPhone(sessionId)
		if err != nil {
			return
		}
	}
	addrs, e := ns.ar.LoadAddresses()
	if e != nil {
		err = e
		return
	}
	status.HasAddress = len(addrs) > 0

	switch {
	case !status.LocationAsked:
		status.Screen = entities.ScreenLocationPermission
	case !status.LoggedIn:
		status.Screen = entities.ScreenLogin
	case !status.HasAddress:
		status.Screen = entities.ScreenAddressSetup
	default:
		status.Screen = entities.ScreenHome
	}
	return
}

// Current returns the session's navigation state, starting it at home on
// first use.
func (ns *NavigationService) Current(sessionId string) (state entities.NavState, err error) {
	state, exists, err := ns.nr.GetState(sessionId)
	if err != nil {
		return
	}
	if !exists {
		state = entities.NavState{Screen: entities.ScreenHome}
		err = ns.nr.SetState(sessionId, state)
	}
	return
}

// Navigate performs one user-triggered transition. Exactly one screen is
// active at a time; unknown targets fail validation and moves without an
// edge from the current screen are rejected.
func (ns *NavigationService) Navigate(sessionId string, req models.NavigateRequest) (state entities.NavState, err error) {
	target := entities.Screen(req.Screen)
	if !tabScreens[target] && navEdges[target] == nil {
		log.Printf("Navigate: unknown or unreachable screen %q", req.Screen)
		err = models.ErrValidation
		return
	}

	state, err = ns.Current(sessionId)
	if err != nil {
		return
	}
	if !tabScreens[target] && !navEdges[target][state.Screen] {
		log.Printf("Navigate: no transition from %q to %q", state.Screen, target)
		err = models.ErrNotAllowed
		return
	}

	state.ProductId = ""
	state.Category = ""
	switch target {
	case entities.ScreenProduct:
		if _, ex := ns.cr.GetProductById(req.ProductId); !ex {
			log.Printf("Navigate: product %q does not exist", req.ProductId)
			err = models.ErrNotFoundError
			return
		}
		state.ProductId = req.ProductId
	case entities.ScreenCategory:
		if !ns.categoryExists(req.Category) {
			log.Printf("Navigate: category %q does not exist", req.Category)
			err = models.ErrNotFoundError
			return
		}
		state.Category = req.Category
	}
	state.Screen = target
	err = ns.nr.SetState(sessionId, state)
	return
}

func (ns *NavigationService) categoryExists(name string) bool {
	if name == "" || name == "All" {
		return false
	}
	for _, c := range ns.cr.GetAllCategories() {
		if c.Name == name {
			return true
		}
	}
	return false
}
