package skillbotml

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// main_file should not be a number
const main_file string = "main.txt"

type layerManifest struct {
	Name string
	Type string // TypeString of the Operator; "" for the input layer
	Size int
}

type netManifest struct {
	CostFunc string
	Layers   []layerManifest
}

func (net *Network) printMain(dirPath string) error {
	f, err := os.Create(dirPath + "/" + main_file)
	if err != nil {
		return errors.Wrapf(err, "Couldn't create file %s in %s\n", main_file, dirPath)
	}

	defer f.Close()

	m := netManifest{
		CostFunc: net.cf.TypeString(),
		Layers:   make([]layerManifest, len(net.layers)),
	}

	for i, l := range net.layers {
		m.Layers[i] = layerManifest{Name: l.name, Size: l.Size()}
		if !l.IsInput() {
			m.Layers[i].Type = l.op.TypeString()
		}
	}

	enc := json.NewEncoder(f)
	if err = enc.Encode(m); err != nil {
		return errors.Wrapf(err, "Failed to encode manifest to file %s\n", main_file)
	}

	return nil
}

// Save saves the Network to the specified path, creating a directory to contain it (with
// permissions 0700). The directory holds a manifest of the architecture plus one subdirectory
// per Layer with weights.
//
// If 'overwrite' is false and the directory already exists, Save will return error.
func (net *Network) Save(dirPath string, overwrite bool) error {
	if net.stat < finalized {
		return ErrNetNotFinalized
	}

	// check if the folder already exists
	if _, err := os.Stat(dirPath); err == nil {
		if !overwrite {
			return errors.Errorf("Can't save network, folder already exists, and overwrite is not enabled")
		}

		if err = os.RemoveAll(dirPath); err != nil {
			return errors.Errorf("Can't save network, couldn't remove pre-existing folder to overwrite")
		}
	}

	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make directory to save network\n")
	}

	if err := net.printMain(dirPath); err != nil {
		return errors.Wrapf(err, "Can't save network\n")
	}

	for _, l := range net.layers[1:] {
		if err := l.op.Save(l, dirPath+"/"+strconv.Itoa(l.id)); err != nil {
			return errors.Wrapf(err, "Can't save network, failed to save Operator of Layer %v\n", l)
		}
	}

	return nil
}

// Load loads a Network from a version previously saved in a directory.
//
// The provided path should be to the containing folder, the same as it would have been to
// Save() the network. The types recorded in the manifest are remade through the registered
// constructors, so the subpackages implementing them must have been imported.
func Load(dirPath string) (*Network, error) {
	if _, err := os.Stat(dirPath); err != nil {
		return nil, errors.Errorf("Can't load network, containing directory does not exist")
	}

	main, err := os.Open(dirPath + "/" + main_file)
	if err != nil {
		return nil, errors.Errorf("Can't load network, main file does not exist")
	}
	defer main.Close()

	var m netManifest
	dec := json.NewDecoder(main)
	if err = dec.Decode(&m); err != nil {
		return nil, errors.Wrapf(err, "Can't load network, main file is incompatible\n")
	}

	if len(m.Layers) < 2 {
		return nil, errors.Errorf("Can't load network, manifest has too few layers (%d)", len(m.Layers))
	}

	net := new(Network)
	if err = net.AddInput(m.Layers[0].Size); err != nil {
		return nil, errors.Wrapf(err, "Can't load network, failed to remake input layer\n")
	}

	for _, lm := range m.Layers[1:] {
		op, err := OperatorFromString(lm.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't load network, no Operator for layer %q\n", lm.Name)
		}

		if err = net.Add(lm.Name, op, lm.Size); err != nil {
			return nil, errors.Wrapf(err, "Can't load network, failed to remake layer %q\n", lm.Name)
		}
	}

	cf, err := CostFunctionFromString(m.CostFunc)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network, no CostFunction\n")
	}

	if err = net.Finalize(cf); err != nil {
		return nil, errors.Wrapf(err, "Loaded network; could not finalize\n")
	}

	for _, l := range net.layers[1:] {
		if err = l.op.Load(l, dirPath+"/"+strconv.Itoa(l.id)); err != nil {
			return nil, errors.Wrapf(err, "Can't load network, failed to load Operator of Layer %v\n", l)
		}
	}

	return net, nil
}
