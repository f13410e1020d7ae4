package ecs

// ClassID identifies a component wire schema. The values are part of the
// renderer protocol and must never change.
type ClassID int

const (
	ClassNone      ClassID = 0
	ClassTransform ClassID = 1
	ClassUUIDEvent ClassID = 8

	ClassBoxShape      ClassID = 16
	ClassSphereShape   ClassID = 17
	ClassPlaneShape    ClassID = 18
	ClassConeShape     ClassID = 19
	ClassCylinderShape ClassID = 20
	ClassTextShape     ClassID = 21
	ClassNFTShape      ClassID = 22

	ClassUIWorldSpaceShape  ClassID = 23
	ClassUIScreenSpaceShape ClassID = 24
	ClassUIContainerRect    ClassID = 25
	ClassUIContainerStack   ClassID = 26
	ClassUITextShape        ClassID = 27
	ClassUIInputTextShape   ClassID = 28
	ClassUIImageShape       ClassID = 29
	ClassUISliderShape      ClassID = 30

	ClassCircleShape       ClassID = 31
	ClassBillboard         ClassID = 32
	ClassAnimation         ClassID = 33
	ClassFont              ClassID = 34
	ClassUIFullscreenShape ClassID = 40
	ClassUIButtonShape     ClassID = 41

	ClassGLTFShape   ClassID = 54
	ClassOBJShape    ClassID = 55
	ClassAvatarShape ClassID = 56

	ClassBasicMaterial   ClassID = 64
	ClassPBRMaterial     ClassID = 65
	ClassHighlightEntity ClassID = 66
	ClassSound           ClassID = 67
	ClassTexture         ClassID = 68
	ClassVideoClip       ClassID = 70
	ClassVideoTexture    ClassID = 71

	ClassAudioClip          ClassID = 200
	ClassAudioSource        ClassID = 201
	ClassAudioStream        ClassID = 202
	ClassGizmos             ClassID = 203
	ClassSmartItem          ClassID = 204
	ClassAvatarModifierArea ClassID = 205

	ClassName          ClassID = 300
	ClassLockedOnEdit  ClassID = 301
	ClassVisibleOnEdit ClassID = 302
)

var classNames = map[ClassID]string{
	ClassTransform:          "TRANSFORM",
	ClassUUIDEvent:          "UUID_CALLBACK",
	ClassBoxShape:           "BOX_SHAPE",
	ClassSphereShape:        "SPHERE_SHAPE",
	ClassPlaneShape:         "PLANE_SHAPE",
	ClassConeShape:          "CONE_SHAPE",
	ClassCylinderShape:      "CYLINDER_SHAPE",
	ClassTextShape:          "TEXT_SHAPE",
	ClassNFTShape:           "NFT_SHAPE",
	ClassUIWorldSpaceShape:  "UI_WORLD_SPACE_SHAPE",
	ClassUIScreenSpaceShape: "UI_SCREEN_SPACE_SHAPE",
	ClassUIContainerRect:    "UI_CONTAINER_RECT",
	ClassUIContainerStack:   "UI_CONTAINER_STACK",
	ClassUITextShape:        "UI_TEXT_SHAPE",
	ClassUIInputTextShape:   "UI_INPUT_TEXT_SHAPE",
	ClassUIImageShape:       "UI_IMAGE_SHAPE",
	ClassUISliderShape:      "UI_SLIDER_SHAPE",
	ClassCircleShape:        "CIRCLE_SHAPE",
	ClassBillboard:          "BILLBOARD",
	ClassAnimation:          "ANIMATION",
	ClassFont:               "FONT",
	ClassUIFullscreenShape:  "UI_FULLSCREEN_SHAPE",
	ClassUIButtonShape:      "UI_BUTTON_SHAPE",
	ClassGLTFShape:          "GLTF_SHAPE",
	ClassOBJShape:           "OBJ_SHAPE",
	ClassAvatarShape:        "AVATAR_SHAPE",
	ClassBasicMaterial:      "BASIC_MATERIAL",
	ClassPBRMaterial:        "PBR_MATERIAL",
	ClassHighlightEntity:    "HIGHLIGHT_ENTITY",
	ClassSound:              "SOUND",
	ClassTexture:            "TEXTURE",
	ClassVideoClip:          "VIDEO_CLIP",
	ClassVideoTexture:       "VIDEO_TEXTURE",
	ClassAudioClip:          "AUDIO_CLIP",
	ClassAudioSource:        "AUDIO_SOURCE",
	ClassAudioStream:        "AUDIO_STREAM",
	ClassGizmos:             "GIZMOS",
	ClassSmartItem:          "SMART_ITEM",
	ClassAvatarModifierArea: "AVATAR_MODIFIER_AREA",
	ClassName:               "NAME",
	ClassLockedOnEdit:       "LOCKED_ON_EDIT",
	ClassVisibleOnEdit:      "VISIBLE_ON_EDIT",
}

func (c ClassID) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
