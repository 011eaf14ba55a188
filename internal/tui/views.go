package tui

import "github.com/jask/shopfront/internal/shop"

// Render targets. Each stores the latest snapshot pushed by the
// coordinator; View() draws from these and never from the models. That
// keeps the render path a pure function of what the coordinator chose
// to publish.

type headerView struct {
	vm shop.HeaderViewModel
}

func (v *headerView) Render(vm shop.HeaderViewModel) { v.vm = vm }

type catalogView struct {
	vm shop.CatalogViewModel
}

func (v *catalogView) Render(vm shop.CatalogViewModel) { v.vm = vm }

type previewView struct {
	vm shop.PreviewViewModel
}

func (v *previewView) Render(vm shop.PreviewViewModel) { v.vm = vm }

type basketView struct {
	vm shop.BasketViewModel
}

func (v *basketView) Render(vm shop.BasketViewModel) { v.vm = vm }

type addressView struct {
	vm shop.AddressViewModel
}

func (v *addressView) Render(vm shop.AddressViewModel) { v.vm = vm }

func (v *addressView) SetValidation(errMsg string, submitEnabled bool) {
	v.vm.Error = errMsg
	v.vm.SubmitEnabled = submitEnabled
}

type contactsView struct {
	vm shop.ContactsViewModel
}

func (v *contactsView) Render(vm shop.ContactsViewModel) { v.vm = vm }

func (v *contactsView) SetValidation(errMsg string, submitEnabled bool) {
	v.vm.Error = errMsg
	v.vm.SubmitEnabled = submitEnabled
}

type successView struct {
	vm shop.SuccessViewModel
}

func (v *successView) Render(vm shop.SuccessViewModel) { v.vm = vm }

// modalHost tracks what the single modal surface is showing.
type modalHost struct {
	content shop.ModalContent
}

func (m *modalHost) Show(c shop.ModalContent) { m.content = c }
func (m *modalHost) Close()                   { m.content = shop.ModalNone }
func (m *modalHost) open() bool               { return m.content != shop.ModalNone }
