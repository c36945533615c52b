package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/gadgetstore/internal/validate"
	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

func checkColor(v string) error {
	_, err := validate.Color(v)
	return err
}

func (s *Session) add() error {
	s.header("ADD NEW GADGET")

	var in types.NewGadget
	var err error
	if in.Model, err = s.promptText("Enter gadget model: ", validate.Model); err != nil {
		return err
	}
	if in.Category, err = s.promptText("Enter gadget category (phone/laptop/etc.): ", validate.Category); err != nil {
		return err
	}
	if in.Brand, err = s.promptText("Enter brand name: ", validate.Brand); err != nil {
		return err
	}
	if in.Price, err = s.promptPrice("Enter price: "); err != nil {
		return err
	}
	if in.Color, err = s.promptText("Enter color: ", checkColor); err != nil {
		return err
	}
	if in.Quantity, err = s.promptQuantity("Enter stock quantity: "); err != nil {
		return err
	}

	sn, err := s.store.Add(in)
	if err != nil {
		s.log.Warn("add failed", zap.Error(err))
		s.failure.Fprintf(s.out, "\nCould not add gadget: %s\n", describe(err))
		return s.pause()
	}

	s.log.Info("gadget added", zap.String("serial", sn), zap.String("category", in.Category))
	s.checkInvariants("add")
	s.success.Fprintln(s.out, "\nGadget added successfully!")
	fmt.Fprintf(s.out, "Generated Serial Number: %s\n", sn)
	return s.pause()
}

func (s *Session) search() error {
	s.header("SEARCH GADGET")

	term, err := s.readLine("Enter search term (brand/model/category): ")
	if err != nil {
		return err
	}

	result, err := s.store.Search(term)
	if errors.Is(err, types.ErrEmptyQuery) {
		s.failure.Fprintln(s.out, "\nSearch term cannot be empty!")
		return s.pause()
	}
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	s.log.Info("search", zap.String("term", term), zap.Stringer("tier", result.Tier), zap.Int("count", result.Count()))

	switch result.Tier {
	case types.TierCategory:
		fmt.Fprintf(s.out, "\nFound gadgets in category '%s':\n\n", strings.ToUpper(result.Category))
		renderTable(s.out, result.Gadgets)
	case types.TierBrand:
		fmt.Fprintf(s.out, "\nFound gadgets of brand '%s':\n\n", strings.ToUpper(result.Term))
		renderTable(s.out, result.Gadgets)
	case types.TierModel:
		fmt.Fprintf(s.out, "\nFound %d matching gadget(s) by model:\n\n", result.Count())
		renderTable(s.out, result.Gadgets)
	default:
		s.println("\nNo gadgets found matching your search.")
	}
	return s.pause()
}

// showInventory prints every category table. It reports false, after
// telling the operator, when the store is empty.
func (s *Session) showInventory() bool {
	if s.store.Len() == 0 {
		s.println("\nNo gadgets in store!")
		return false
	}
	s.println("\nCurrent Gadgets in Store:")
	s.println()
	for _, listing := range s.store.ListAll() {
		renderTable(s.out, listing.Gadgets)
		s.println()
	}
	return true
}

// promptSerial asks for a serial until lookup succeeds. It returns ok=false
// when the operator enters Q.
func (s *Session) promptSerial(action string) (types.Gadget, bool, error) {
	for {
		sn, err := s.readLine(fmt.Sprintf("\nEnter gadget serial number to %s (Q to cancel): ", action))
		if err != nil {
			return types.Gadget{}, false, err
		}
		if strings.EqualFold(sn, "q") {
			return types.Gadget{}, false, nil
		}
		g, err := s.store.FindBySerial(sn)
		if errors.Is(err, types.ErrNotFound) {
			s.log.Debug("serial not found", zap.String("serial", sn))
			s.failure.Fprintln(s.out, "\nGadget not found! Please try again.")
			continue
		}
		if err != nil {
			return types.Gadget{}, false, fmt.Errorf("find gadget: %w", err)
		}
		return g, true, nil
	}
}

func (s *Session) remove() error {
	s.header("DELETE GADGET")
	if !s.showInventory() {
		return s.pause()
	}

	g, ok, err := s.promptSerial("delete")
	if err != nil {
		return err
	}
	if !ok {
		s.println("\nDeletion cancelled.")
		return s.pause()
	}

	if err := s.store.Remove(g.SerialNumber); err != nil {
		return fmt.Errorf("remove gadget: %w", err)
	}
	s.log.Info("gadget removed", zap.String("serial", g.SerialNumber), zap.String("category", g.Category))
	s.checkInvariants("remove")
	s.success.Fprintln(s.out, "\nGadget deleted successfully!")
	return s.pause()
}

func (s *Session) modify() error {
	s.header("MODIFY GADGET")
	if !s.showInventory() {
		return s.pause()
	}

	g, ok, err := s.promptSerial("modify")
	if err != nil {
		return err
	}
	if !ok {
		s.println("\nModification cancelled.")
		return s.pause()
	}

	s.println("\nSelected gadget details:")
	renderTable(s.out, []types.Gadget{g})
	s.println("\nEnter new details (press Enter to keep current value):")

	var patch types.Patch
	if patch.Model, err = s.promptOptionalText(fmt.Sprintf("Model [%s]: ", g.Model), validate.Model); err != nil {
		return err
	}
	if patch.Brand, err = s.promptOptionalText(fmt.Sprintf("Brand [%s]: ", g.Brand), validate.Brand); err != nil {
		return err
	}
	if patch.Color, err = s.promptOptionalText(fmt.Sprintf("Color [%s]: ", g.Color), checkColor); err != nil {
		return err
	}
	if patch.Price, err = s.promptOptionalPrice(fmt.Sprintf("Price [%.2f]: ", g.Price)); err != nil {
		return err
	}
	if patch.Quantity, err = s.promptOptionalQuantity(fmt.Sprintf("Stock Quantity [%d]: ", g.StockQuantity)); err != nil {
		return err
	}

	if err := s.store.Modify(g.SerialNumber, patch); err != nil {
		s.log.Warn("modify failed", zap.String("serial", g.SerialNumber), zap.Error(err))
		s.failure.Fprintf(s.out, "\nCould not modify gadget: %s\n", describe(err))
		return s.pause()
	}

	s.log.Info("gadget modified", zap.String("serial", g.SerialNumber), zap.Bool("changed", !patch.Empty()))
	s.checkInvariants("modify")
	s.success.Fprintln(s.out, "\nGadget modified successfully!")
	return s.pause()
}

func (s *Session) list() error {
	s.header("LIST ALL GADGETS")

	listings := s.store.ListAll()
	if len(listings) == 0 {
		s.println("\nNo gadgets in store!")
		return s.pause()
	}
	for _, listing := range listings {
		fmt.Fprintf(s.out, "\nCategory: %s\n\n", strings.ToUpper(listing.Name))
		renderTable(s.out, listing.Gadgets)
		s.println()
	}
	return s.pause()
}

// verifier is implemented by catalogs that can check their own invariants.
type verifier interface {
	Verify() error
}

// checkInvariants runs the catalog self-check after a mutation. It only runs
// when debug logging is enabled.
func (s *Session) checkInvariants(op string) {
	v, ok := s.store.(verifier)
	if !ok || !s.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	if err := v.Verify(); err != nil {
		s.log.Error("catalog invariant violated", zap.String("op", op), zap.Error(err))
		return
	}
	s.log.Debug("catalog verified", zap.String("op", op))
}

// reject tells the operator why a value was refused.
func (s *Session) reject(err error) {
	var fe *types.FieldError
	if errors.As(err, &fe) {
		s.log.Debug("input rejected", zap.String("field", string(fe.Field)), zap.String("reason", string(fe.Reason)))
	}
	s.failure.Fprintln(s.out, describe(err))
}

// promptText asks until check accepts the input.
func (s *Session) promptText(prompt string, check func(string) error) (string, error) {
	for {
		v, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if err := check(v); err != nil {
			s.reject(err)
			continue
		}
		return v, nil
	}
}

// promptOptionalText is promptText where an empty line keeps the current
// value and yields nil.
func (s *Session) promptOptionalText(prompt string, check func(string) error) (*string, error) {
	for {
		v, err := s.readLine(prompt)
		if err != nil {
			return nil, err
		}
		if v == "" {
			return nil, nil
		}
		if err := check(v); err != nil {
			s.reject(err)
			continue
		}
		return &v, nil
	}
}

func parsePrice(v string) (float64, error) {
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, types.NewFieldError(types.FieldPrice, types.ReasonBadCharset)
	}
	if err := validate.Price(x); err != nil {
		return 0, err
	}
	return x, nil
}

func parseQuantity(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, types.NewFieldError(types.FieldQuantity, types.ReasonBadCharset)
	}
	if err := validate.Quantity(n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Session) promptPrice(prompt string) (float64, error) {
	for {
		v, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		x, err := parsePrice(v)
		if err != nil {
			s.reject(err)
			continue
		}
		return x, nil
	}
}

func (s *Session) promptOptionalPrice(prompt string) (*float64, error) {
	for {
		v, err := s.readLine(prompt)
		if err != nil || v == "" {
			return nil, err
		}
		x, err := parsePrice(v)
		if err != nil {
			s.reject(err)
			continue
		}
		return &x, nil
	}
}

func (s *Session) promptQuantity(prompt string) (int, error) {
	for {
		v, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := parseQuantity(v)
		if err != nil {
			s.reject(err)
			continue
		}
		return n, nil
	}
}

func (s *Session) promptOptionalQuantity(prompt string) (*int, error) {
	for {
		v, err := s.readLine(prompt)
		if err != nil || v == "" {
			return nil, err
		}
		n, err := parseQuantity(v)
		if err != nil {
			s.reject(err)
			continue
		}
		return &n, nil
	}
}
