// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"code.gitea.io/gitobject/modules/cache"
	"code.gitea.io/gitobject/modules/git/object"
	"code.gitea.io/gitobject/modules/util"
)

func (repo *Repository) checkID(id string) error {
	if !repo.objectFormat.IsValid(id) {
		return util.NewInvalidArgumentErrorf("invalid %s object id %q", repo.objectFormat.Name(), id)
	}
	return nil
}

// GetObject fetches the object and decodes it according to its type.
// An unknown id returns ErrNotExist. The returned record is the caller's own copy.
func (repo *Repository) GetObject(id string) (object.Record, error) {
	if err := repo.checkID(id); err != nil {
		return nil, err
	}
	rec, err := cache.GetOrLoad(repo.records, id, func() (object.Record, error) {
		// concurrent misses of the same id share one round trip to the source
		v, err, _ := repo.loads.Do(id, func() (any, error) {
			return repo.loadObject(id)
		})
		if err != nil {
			return nil, err
		}
		return v.(object.Record), nil
	})
	if err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

func (repo *Repository) loadObject(id string) (object.Record, error) {
	raw, found, err := repo.source.Get(id)
	if err != nil {
		return nil, err
	} else if !found {
		return nil, ErrNotExist{ID: id}
	}
	return object.Decode(repo.objectFormat, raw)
}

// ObjectInfo returns the type and size of the object without reading its content
func (repo *Repository) ObjectInfo(id string) (*object.ObjectInfo, error) {
	if err := repo.checkID(id); err != nil {
		return nil, err
	}
	info, found, err := repo.source.Info(id)
	if err != nil {
		return nil, err
	} else if !found {
		return nil, ErrNotExist{ID: id}
	}
	return info, nil
}

func getTypedObject[T object.Record](repo *Repository, id string, expected object.Type) (T, error) {
	var zero T
	rec, err := repo.GetObject(id)
	if err != nil {
		return zero, err
	}
	typed, ok := rec.(T)
	if !ok {
		return zero, ErrObjectType{ID: id, Expected: expected, Actual: rec.Type()}
	}
	return typed, nil
}

// GetCommit returns the commit object
func (repo *Repository) GetCommit(id string) (*object.Commit, error) {
	return getTypedObject[*object.Commit](repo, id, object.TypeCommit)
}

// GetTree returns the tree object
func (repo *Repository) GetTree(id string) (*object.Tree, error) {
	return getTypedObject[*object.Tree](repo, id, object.TypeTree)
}

// GetBlob returns the blob object
func (repo *Repository) GetBlob(id string) (*object.Blob, error) {
	return getTypedObject[*object.Blob](repo, id, object.TypeBlob)
}

// GetTag returns the annotated tag object
func (repo *Repository) GetTag(id string) (*object.Tag, error) {
	return getTypedObject[*object.Tag](repo, id, object.TypeTag)
}
